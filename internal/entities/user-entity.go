// Файл: internal/entities/user_entity.go
package entities

type User struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	AllowedRoutes []int64 `json:"allowedRoutes" db:"allowed_routes"`
	CostLimit     float64 `json:"costLimit" db:"cost_limit"`
}

// AllowsRoute сообщает, входит ли маршрут в список разрешённых.
func (u *User) AllowsRoute(routeID int64) bool {
	for _, id := range u.AllowedRoutes {
		if id == routeID {
			return true
		}
	}
	return false
}
