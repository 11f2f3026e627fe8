package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/wishlist"
	"library-backend/internal/shared/query"
	"library-backend/pkg/logger"
)

type wishlistService struct {
	repo     wishlist.Repository
	bookRepo book.Repository
}

func NewWishlistService(repo wishlist.Repository, bookRepo book.Repository) wishlist.Service {
	return &wishlistService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *wishlistService) Create(ctx context.Context, userID uuid.UUID, req wishlist.CreateWishlistRequest) (*wishlist.EntryDTO, error) {
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return nil, wishlist.ErrBookNotFound
	}

	exists, err := s.bookRepo.Exists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, wishlist.ErrBookNotFound
	}

	now := time.Now()
	entry := &wishlist.Entry{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Notes != "" {
		entry.Notes = &req.Notes
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByIDForUser(ctx, entry.ID, userID)
	if err != nil {
		return nil, err
	}

	logger.Info("wishlist entry created", map[string]interface{}{
		"user_id": userID.String(),
		"book_id": bookID.String(),
	})

	dto := created.ToDTO()
	return &dto, nil
}

func (s *wishlistService) GetByID(ctx context.Context, userID, id uuid.UUID) (*wishlist.EntryDTO, error) {
	entry, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	dto := entry.ToDTO()
	return &dto, nil
}

func (s *wishlistService) List(ctx context.Context, userID uuid.UUID, req wishlist.ListWishlistRequest) ([]wishlist.EntryDTO, query.Meta, error) {
	filter := wishlist.ListFilter{
		Sort: query.ResolveSort(req.SortBy, req.SortOrder, wishlist.WishlistSortFields),
		Page: query.NewPagination(req.Page, req.PerPage),
	}

	entries, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, query.Meta{}, err
	}

	dtos := make([]wishlist.EntryDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, entries[i].ToDTO())
	}

	return dtos, filter.Page.BuildMeta(total), nil
}

func (s *wishlistService) Update(ctx context.Context, userID, id uuid.UUID, req wishlist.UpdateWishlistRequest) (*wishlist.EntryDTO, error) {
	// Only notes are mutable. Moving an entry to another book means
	// deleting it and saving the other book.
	if req.Notes == nil {
		return s.GetByID(ctx, userID, id)
	}

	notes := req.Notes
	if *notes == "" {
		notes = nil
	}

	updated, err := s.repo.UpdateNotes(ctx, id, userID, notes)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *wishlistService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

// Check never reports an error for a missing entry: absence is a
// regular answer, not a failure.
func (s *wishlistService) Check(ctx context.Context, userID, bookID uuid.UUID) (*wishlist.CheckResponse, error) {
	entry, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, wishlist.ErrEntryNotFound) {
			return &wishlist.CheckResponse{InWishlist: false, Entry: nil}, nil
		}
		return nil, err
	}

	dto := entry.ToDTO()
	return &wishlist.CheckResponse{InWishlist: true, Entry: &dto}, nil
}
