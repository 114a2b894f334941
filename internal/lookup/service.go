// Package lookup answers word lookup requests and records successful ones in history.
package lookup

import (
	"context"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/history"
)

// Dictionary looks a word up in a remote dictionary.
type Dictionary interface {
	Lookup(ctx context.Context, lang, word string) dictionary.Result
}

// Request is the inbound lookup message.
type Request struct {
	Word string `json:"word"`
	Lang string `json:"lang"`
}

// Reply is the message sent back to the requester. It encodes as {} when
// the lookup failed, {"content":{}} when the word has no definitions, and
// {"content":{...}} on success.
type Reply struct {
	Content *dictionary.Content `json:"content,omitempty"`
}

// ReplyFrom collapses a tagged result into a Reply.
func ReplyFrom(result dictionary.Result) Reply {
	switch result.Status {
	case dictionary.StatusFound:
		content := result.Content
		return Reply{Content: &content}
	case dictionary.StatusNoDefinitions:
		return Reply{Content: &dictionary.Content{}}
	default:
		return Reply{}
	}
}

type Service struct {
	dictionary Dictionary
	recorder   *history.Recorder

	// background tracks history writes started after a reply.
	background sync.WaitGroup
}

func NewService(dict Dictionary, recorder *history.Recorder) *Service {
	return &Service{
		dictionary: dict,
		recorder:   recorder,
	}
}

// Handle answers req with the collapsed reply.
func (s *Service) Handle(ctx context.Context, req Request) Reply {
	return ReplyFrom(s.Lookup(ctx, req))
}

// Lookup answers req with the tagged result. Once started, the lookup is not
// cancelled by ctx; only the dictionary timeout bounds it. A found word is
// recorded in history in the background; the result does not wait for it.
func (s *Service) Lookup(ctx context.Context, req Request) dictionary.Result {
	logger := slog.Default().With("word", req.Word, "lang", req.Lang)

	ctx = context.WithoutCancel(ctx)
	result := s.dictionary.Lookup(ctx, req.Lang, req.Word)
	switch result.Status {
	case dictionary.StatusFound:
		s.record(ctx, result.Content)
	case dictionary.StatusNoDefinitions:
		logger.Debug("no definitions found")
	case dictionary.StatusNotFound:
		logger.Debug("word not found")
	case dictionary.StatusUpstreamError:
		logger.Warn("dictionary returned an error status", "status", result.StatusCode, "error", result.Err)
	case dictionary.StatusTransportError:
		logger.Error("dictionary lookup failed", "error", result.Err)
	}
	return result
}

// record expects a ctx already detached from the caller so the write outlives the request.
func (s *Service) record(ctx context.Context, content dictionary.Content) {
	if s.recorder == nil {
		return
	}

	s.background.Go(func() {
		recorded, err := s.recorder.Record(ctx, content)
		if err != nil {
			slog.Default().Error("failed to record history", "word", content.Word, "error", err)
			return
		}
		if recorded {
			slog.Default().Debug("recorded history", "word", content.Word)
		}
	})
}

// Wait blocks until every history write started so far has finished.
func (s *Service) Wait() {
	s.background.Wait()
}

// Shutdown waits for pending history writes or for ctx to be done.
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
