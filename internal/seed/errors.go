package seed

import "fmt"

// ParentNoEncontradoError reports a failed natural-key lookup while resolving
// a parent reference. The seed data is hand-authored and static, so a missing
// parent is an authoring defect: the error aborts the whole run instead of
// being retried.
type ParentNoEncontradoError struct {
	Tabla string
	Clave string
}

func (e *ParentNoEncontradoError) Error() string {
	return fmt.Sprintf("registro padre no encontrado en %s: %q", e.Tabla, e.Clave)
}
