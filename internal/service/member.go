package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"discountapi/internal/directory"
	"discountapi/internal/model"
	"discountapi/internal/pricing"
	"discountapi/internal/promo"
	"discountapi/internal/repository"
	"discountapi/internal/storage"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("member not found")
	ErrInvalidPromo = errors.New("invalid promo code")
)

// How long a presigned receipt download link stays valid.
const receiptExpiry = 15 * time.Minute

// MemberListResult is the service-level DTO for paginated members.
type MemberListResult struct {
	Items []model.Member `json:"data"`
	Total int            `json:"total"`
}

// MemberService defines the use cases for the discount program.
type MemberService interface {
	// Register validates the age, resolves the display name from the member
	// directory, and persists the new member.
	Register(ctx context.Context, directoryID int64, age int) (*model.Member, error)

	// List returns members using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*MemberListResult, error)

	// Get returns a single member by its ID.
	Get(ctx context.Context, id string) (*model.Member, error)

	// Delete removes a member by ID.
	Delete(ctx context.Context, id string) error

	// Quote prices a discount for the member, optionally applying a mirror
	// promo code, stores a JSON receipt in object storage, and returns the
	// quote with a presigned receipt URL. Storage is rolled back if presigning fails.
	Quote(ctx context.Context, memberID, promoCode string) (*model.Quote, error)
}

// memberService is a concrete implementation of MemberService.
type memberService struct {
	store storage.Storage
	repo  repository.MemberRepository
	names directory.NameFetcher
}

// NewMemberService constructs a new MemberService.
func NewMemberService(store storage.Storage, repo repository.MemberRepository, names directory.NameFetcher) MemberService {
	return &memberService{store: store, repo: repo, names: names}
}

func (s *memberService) Register(ctx context.Context, directoryID int64, age int) (*model.Member, error) {
	// Reject ages the pricing core cannot classify before any I/O.
	if _, err := pricing.BracketFor(age); err != nil {
		return nil, err
	}

	name, err := s.names.FetchName(ctx, directoryID)
	if err != nil {
		return nil, fmt.Errorf("fetch member name: %w", err)
	}

	m := &model.Member{
		ID:          uuid.New().String(),
		DirectoryID: directoryID,
		Name:        name,
		Age:         age,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns paginated members without exposing repository types.
func (s *memberService) List(ctx context.Context, limit, offset int) (*MemberListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &MemberListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a member by ID.
func (s *memberService) Get(ctx context.Context, id string) (*model.Member, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a member record.
func (s *memberService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete DB row (repository ignores missing row errors as per contract)
	return s.repo.Delete(ctx, id)
}

// Quote computes the discount for a member and archives a receipt.
func (s *memberService) Quote(ctx context.Context, memberID, promoCode string) (*model.Quote, error) {
	if memberID == "" {
		return nil, ErrIDRequired
	}
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bracket, err := pricing.BracketFor(m.Age)
	if err != nil {
		// A stored age should always classify; the CHECK constraint guards inserts.
		return nil, fmt.Errorf("classify member age: %w", err)
	}

	promoApplied := false
	if promoCode != "" {
		if err := promo.ValidateCode(promoCode); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPromo, err)
		}
		promoApplied = true
	}

	q := &model.Quote{
		MemberID:     m.ID,
		Bracket:      string(bracket),
		Rate:         pricing.Combine(pricing.RateFor(bracket), promoApplied),
		PromoApplied: promoApplied,
		Code:         promoCode,
		ReceiptKey:   "receipts/" + uuid.New().String() + ".json",
		CreatedAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encode receipt: %w", err)
	}

	_, err = s.store.Put(ctx, q.ReceiptKey, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"member-id": m.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store receipt: %w", err)
	}

	url, err := s.store.PresignGet(ctx, q.ReceiptKey, receiptExpiry)
	if err != nil {
		// Rollback: delete the receipt from storage
		if delErr := s.store.Delete(ctx, q.ReceiptKey); delErr != nil {
			return nil, fmt.Errorf("presign receipt failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign receipt failed: %w", err)
	}
	q.ReceiptURL = url

	return q, nil
}
