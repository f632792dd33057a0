package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/tradingdash/journal-api/internal/core/domain"
)

type stubUserService struct {
	profiles []domain.Profile
	profile  *domain.Profile
	err      error

	gotID   string
	gotRole string
	calls   int
}

func (s *stubUserService) ListUsers(_ context.Context) ([]domain.Profile, error) {
	s.calls++
	return s.profiles, s.err
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*domain.Profile, error) {
	s.calls++
	s.gotID = id
	return s.profile, s.err
}

func (s *stubUserService) UpdateRole(_ context.Context, id, role string) (*domain.Profile, error) {
	s.calls++
	s.gotID = id
	s.gotRole = role
	return s.profile, s.err
}

func TestUserList(t *testing.T) {
	svc := &stubUserService{profiles: []domain.Profile{{ID: "u1"}, {ID: "u2"}}}
	h := NewUserHandler(svc)

	c, rec := newHandlerContext(http.MethodGet, "/api/users/", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserGet(t *testing.T) {
	svc := &stubUserService{profile: &domain.Profile{ID: "u1", Role: domain.RoleUser}}
	h := NewUserHandler(svc)

	c, rec := newHandlerContext(http.MethodGet, "/api/users/u1", "", withParam("id", "u1"))
	if err := h.Get(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotID != "u1" {
		t.Fatalf("id not forwarded: %q", svc.gotID)
	}
}

func TestUserGet_NotFoundPassesThrough(t *testing.T) {
	svc := &stubUserService{err: domain.ErrUserNotFound}
	h := NewUserHandler(svc)

	c, _ := newHandlerContext(http.MethodGet, "/api/users/ghost", "", withParam("id", "ghost"))
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUpdateRole(t *testing.T) {
	svc := &stubUserService{profile: &domain.Profile{ID: "u1", Role: domain.RoleAdmin}}
	h := NewUserHandler(svc)

	c, rec := newHandlerContext(http.MethodPut, "/api/users/u1/role",
		`{"role":"admin"}`, withParam("id", "u1"))
	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("update role error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotID != "u1" || svc.gotRole != "admin" {
		t.Fatalf("wrong args: id=%q role=%q", svc.gotID, svc.gotRole)
	}
}

func TestUserUpdateRole_MissingRole(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, _ := newHandlerContext(http.MethodPut, "/api/users/u1/role", `{}`, withParam("id", "u1"))
	err := h.UpdateRole(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if svc.calls != 0 {
		t.Fatalf("service reached without a role")
	}
}

func TestUserUpdateRole_InvalidRolePassesThrough(t *testing.T) {
	svc := &stubUserService{err: domain.ErrInvalidRole}
	h := NewUserHandler(svc)

	c, _ := newHandlerContext(http.MethodPut, "/api/users/u1/role",
		`{"role":"superuser"}`, withParam("id", "u1"))
	if err := h.UpdateRole(c); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
