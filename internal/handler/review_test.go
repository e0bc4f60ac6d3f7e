package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

type fakeReviewStore struct {
	reviews  []model.Review
	profiles []model.Profile
}

func (f *fakeReviewStore) ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error) {
	out := []model.Review{}
	for _, rv := range f.reviews {
		if rv.Email == email {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, review model.Review) (*store.InsertResult, error) {
	if review.Email == "" {
		return nil, store.ErrMissingEmail
	}
	f.reviews = append(f.reviews, review)
	return &store.InsertResult{Acknowledged: true, InsertedID: "rv1"}, nil
}

func (f *fakeReviewStore) CreateProfile(ctx context.Context, profile model.Profile) (*store.InsertResult, error) {
	if profile.Email == "" {
		return nil, store.ErrMissingEmail
	}
	f.profiles = append(f.profiles, profile)
	return &store.InsertResult{Acknowledged: true, InsertedID: "pf1"}, nil
}

func TestReviewList_FiltersByEmail(t *testing.T) {
	st := &fakeReviewStore{reviews: []model.Review{
		{Email: "a@x.com", Description: "great"},
		{Email: "b@x.com", Description: "meh"},
	}}
	h := NewReviewHandler(st, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/myreview?email=a@x.com", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var reviews []model.Review
	if err := json.NewDecoder(rec.Body).Decode(&reviews); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Description != "great" {
		t.Errorf("unexpected reviews: %+v", reviews)
	}
}

func TestReviewCreate(t *testing.T) {
	st := &fakeReviewStore{}
	h := NewReviewHandler(st, testLogger())

	body := strings.NewReader(`{"email":"a@x.com","description":"solid product","rating":5}`)
	req := httptest.NewRequest(http.MethodPost, "/myreview", body)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(st.reviews) != 1 || st.reviews[0].Email != "a@x.com" {
		t.Errorf("unexpected stored reviews: %+v", st.reviews)
	}
}

func TestReviewCreate_MissingEmail(t *testing.T) {
	h := NewReviewHandler(&fakeReviewStore{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/myreview", strings.NewReader(`{"description":"anon"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestProfileCreate(t *testing.T) {
	st := &fakeReviewStore{}
	h := NewProfileHandler(st, testLogger())

	body := strings.NewReader(`{"email":"a@x.com","location":"Springfield"}`)
	req := httptest.NewRequest(http.MethodPost, "/myprofile", body)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(st.profiles) != 1 || st.profiles[0].Email != "a@x.com" {
		t.Errorf("unexpected stored profiles: %+v", st.profiles)
	}
}
