package handler

// errorResponse documents the error envelope rendered by the central HTTP
// error handler. Kept here so swagger annotations can reference it.
type errorResponse struct {
	Detail string `json:"detail"`
}

// updateRoleRequest is the bindable payload for PUT /api/users/:id/role.
// The exact-value check against {"user", "admin"} lives in the user service
// so it is enforced for every caller, not just HTTP ones.
type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
