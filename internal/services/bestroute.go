package services

import "navigation-api/internal/entities"

// SelectBestRoute выбирает самый дешёвый маршрут из разрешённых пользователю,
// стоимость которого не превышает его лимит. При равной стоимости побеждает
// первый в порядке routes. Возвращает nil, если подходящих нет.
func SelectBestRoute(user entities.User, routes []entities.Route) *entities.Route {
	var best *entities.Route
	for i := range routes {
		route := &routes[i]
		if route.Cost > user.CostLimit || !user.AllowsRoute(route.ID) {
			continue
		}
		if best == nil || route.Cost < best.Cost {
			best = route
		}
	}
	if best == nil {
		return nil
	}
	result := *best
	return &result
}
