package dto

import (
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// CreateAdminRequest provisions a department admin. Super admin only.
type CreateAdminRequest struct {
	Username     string `json:"username" binding:"required,max=64"`
	Name         string `json:"name" binding:"required,max=128"`
	Email        string `json:"email" binding:"required,email"`
	Department   string `json:"department" binding:"required,max=32"`
	TempPassword string `json:"tempPassword" binding:"required"`
}

// AdminResponse is the external representation of an admin account.
type AdminResponse struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// StudentResponse is the external representation of a student account.
type StudentResponse struct {
	Username        string    `json:"username"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	SupervisorEmail string    `json:"supervisorEmail"`
	Department      string    `json:"department"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BulkRowResult reports the outcome of one CSV row.
type BulkRowResult struct {
	Line     int    `json:"line"`
	Username string `json:"username"`
	Created  bool   `json:"created"`
	Error    string `json:"error,omitempty"`
}

// BulkCreateStudentsResponse summarizes a CSV upload.
type BulkCreateStudentsResponse struct {
	Created int             `json:"created"`
	Failed  int             `json:"failed"`
	Rows    []BulkRowResult `json:"rows"`
}

// ListAdminsParams defines query parameters for listing admins.
type ListAdminsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListStudentsParams defines query parameters for listing students.
type ListStudentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToAdminResponse converts a domain.Admin to its DTO.
func ToAdminResponse(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		Username:   admin.Username,
		Name:       admin.Name,
		Email:      admin.Email,
		Department: admin.Department,
		Role:       string(admin.Role),
		CreatedAt:  admin.CreatedAt,
	}
}

// ToStudentResponse converts a domain.Student to its DTO.
func ToStudentResponse(student *domain.Student) StudentResponse {
	return StudentResponse{
		Username:        student.Username,
		Name:            student.Name,
		Email:           student.Email,
		SupervisorEmail: student.SupervisorEmail,
		Department:      student.Department,
		CreatedAt:       student.CreatedAt,
	}
}
