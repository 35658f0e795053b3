package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/alexanderramin/uniprompt/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyPrompt is returned when publishing a prompt with no text.
var ErrEmptyPrompt = errors.New("프롬프트 내용을 입력해주세요")

// libraryOrder ranks the most liked prompts first, newest first among ties.
var libraryOrder = []repository.OrderBy{
	{Field: repository.OrderLikes, Desc: true},
	{Field: repository.OrderCreatedAt, Desc: true},
}

type libraryService struct {
	prompts  repository.SharedPromptRepo
	liked    repository.LikedPromptRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewLibraryService(
	prompts repository.SharedPromptRepo,
	liked repository.LikedPromptRepo,
	observers ...UseCaseObserver,
) LibraryService {
	return &libraryService{
		prompts:  prompts,
		liked:    liked,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *libraryService) likedSet(ctx context.Context) (map[string]bool, error) {
	ids, err := s.liked.List(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *libraryService) List(ctx context.Context, assignmentType string) ([]LibraryEntry, error) {
	prompts, err := s.prompts.List(ctx, repository.ListOptions{
		Order:          libraryOrder,
		AssignmentType: assignmentType,
	})
	if err != nil {
		return nil, err
	}
	liked, err := s.likedSet(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LibraryEntry, 0, len(prompts))
	for _, p := range prompts {
		entries = append(entries, LibraryEntry{Prompt: p, Liked: liked[p.ID]})
	}
	return entries, nil
}

func (s *libraryService) Get(ctx context.Context, id string) (*LibraryEntry, error) {
	p, err := s.prompts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	liked, err := s.liked.Has(ctx, id)
	if err != nil {
		return nil, err
	}
	return &LibraryEntry{Prompt: p, Liked: liked}, nil
}

func (s *libraryService) Publish(ctx context.Context, req PublishRequest) (prompt *domain.SharedPrompt, err error) {
	event := UseCaseEvent{UseCase: UseCasePublish, StartedAt: time.Now().UTC(), AssignmentType: req.AssignmentType}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Err = err
		if prompt != nil {
			event.PromptID = prompt.ID
		}
		s.observer.ObserveUseCase(ctx, event)
	}()

	if strings.TrimSpace(req.PromptText) == "" {
		return nil, ErrEmptyPrompt
	}

	prompt = &domain.SharedPrompt{
		ID:             uuid.New().String(),
		PromptText:     req.PromptText,
		AuthorName:     strings.TrimSpace(req.AuthorName),
		AssignmentType: req.AssignmentType,
		CreatedAt:      s.now(),
	}
	if err = s.prompts.Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("publishing prompt: %w", err)
	}
	return prompt, nil
}

func (s *libraryService) setLiked(ctx context.Context, id string, liked bool) error {
	if liked {
		return s.liked.Add(ctx, id, s.now())
	}
	return s.liked.Remove(ctx, id)
}

// ToggleLike flips the local user's like on a prompt. The local liked flag
// is updated first; the store's counter is then overwritten with
// displayedLikes plus or minus one. If the store rejects the write, the flag
// is restored and the returned result carries the prior state alongside the
// error.
func (s *libraryService) ToggleLike(ctx context.Context, id string, displayedLikes int) (result LikeResult, err error) {
	event := UseCaseEvent{UseCase: UseCaseToggleLike, StartedAt: time.Now().UTC(), PromptID: id}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Err = err
		event.Like = &result
		s.observer.ObserveUseCase(ctx, event)
	}()

	wasLiked, err := s.liked.Has(ctx, id)
	if err != nil {
		return LikeResult{PromptID: id, Likes: displayedLikes}, err
	}
	prior := LikeResult{PromptID: id, Liked: wasLiked, Likes: displayedLikes}
	next := LikeResult{PromptID: id, Liked: !wasLiked, Likes: domain.LikeDelta(displayedLikes, !wasLiked)}

	if err = s.setLiked(ctx, id, next.Liked); err != nil {
		return prior, err
	}

	if updateErr := s.prompts.UpdateLikes(ctx, id, next.Likes); updateErr != nil {
		if rbErr := s.setLiked(ctx, id, wasLiked); rbErr != nil {
			err = fmt.Errorf("restoring like state failed: %v (original error: %w)", rbErr, updateErr)
			return prior, err
		}
		event.RolledBack = true
		err = fmt.Errorf("updating like count: %w", updateErr)
		return prior, err
	}
	return next, nil
}
