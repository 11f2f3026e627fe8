package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/shared/query"
	"library-backend/pkg/logger"
)

type bookService struct {
	repo         book.Repository
	categoryRepo category.Repository
	wishlist     book.WishlistReader
}

func NewBookService(repo book.Repository, categoryRepo category.Repository, wishlist book.WishlistReader) book.Service {
	return &bookService{
		repo:         repo,
		categoryRepo: categoryRepo,
		wishlist:     wishlist,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookDTO, error) {
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &book.Book{
		Title:      req.Title,
		Author:     req.Author,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id

	// Re-read for the joined category name.
	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*book.BookDetail, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &book.BookDetail{BookDTO: b.ToDTO()}

	// Wishlist state is personal; anonymous callers get the plain book.
	if callerID != nil {
		inWishlist, notes, err := s.wishlist.StatusFor(ctx, *callerID, id)
		if err != nil {
			logger.Error("failed to resolve wishlist status", err)
		} else {
			detail.InWishlist = &inWishlist
			detail.WishlistNotes = notes
		}
	}

	return detail, nil
}

func (s *bookService) List(ctx context.Context, req *book.ListBooksRequest) (*book.ListBooksResponse, error) {
	filter := &book.ListFilter{
		Title:  req.Title,
		Author: req.Author,
		Sort:   query.ResolveSort(req.SortBy, req.SortOrder, book.BookSortFields),
		Page:   query.NewPagination(req.Page, req.PerPage),
	}
	filter.CreatedFrom, filter.CreatedTo = query.ParseDateRange(req.StartDate, req.EndDate)

	if req.CategoryID != "" {
		if categoryID, err := uuid.Parse(req.CategoryID); err == nil {
			filter.CategoryID = &categoryID
		}
	}

	return s.list(ctx, filter)
}

func (s *bookService) Search(ctx context.Context, req *book.SearchBooksRequest) (*book.ListBooksResponse, error) {
	filter := &book.ListFilter{
		Search: req.Query,
		Sort:   query.ResolveSort(req.SortBy, req.SortOrder, book.BookSortFields),
		Page:   query.NewPagination(req.Page, req.PerPage),
	}

	return s.list(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.BookDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b := existing.Book

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		b.CategoryID = categoryID
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &b); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) list(ctx context.Context, filter *book.ListFilter) (*book.ListBooksResponse, error) {
	books, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]book.BookDTO, 0, len(books))
	for i := range books {
		dtos = append(dtos, books[i].ToDTO())
	}

	return &book.ListBooksResponse{
		Books: dtos,
		Meta:  filter.Page.BuildMeta(total),
	}, nil
}

// resolveCategory validates the FK before the write. An empty id means
// "no category". The store constraint still backs this check.
func (s *bookService) resolveCategory(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return nil, book.ErrCategoryNotFound
	}

	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrCategoryNotFound
	}

	return &categoryID, nil
}
