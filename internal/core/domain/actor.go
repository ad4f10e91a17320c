// internal/core/domain/actor.go
package domain

// Actor identifies the user performing an operation. Read-only input to the
// authorization checks; never persisted by the core.
type Actor struct {
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	ProjectID  string     `json:"project_id"`
	IsAdmin    bool       `json:"is_admin"`
}

// IsProduction reports whether the actor holds the production/admin role.
func (a Actor) IsProduction() bool {
	return a.IsAdmin || a.Department == DepartmentProduction
}

// CanManage reports whether the actor may mutate items belonging to dept.
func (a Actor) CanManage(dept Department) bool {
	return a.IsProduction() || a.Department == dept
}
