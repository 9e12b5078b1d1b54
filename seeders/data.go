package seeders

import "navigation-api/internal/entities"

var routesData = []entities.Route{
	{Name: "Route A", Cost: 5, Traffic: 30},
	{Name: "Route B", Cost: 3, Traffic: 10},
	{Name: "Route C", Cost: 7, Traffic: 50},
	{Name: "Route D", Cost: 2, Traffic: 20},
	{Name: "Route E", Cost: 4, Traffic: 40},
}

// userSeed ссылается на маршруты по индексу в routesData: id появляются
// только после вставки.
type userSeed struct {
	Name         string
	RouteIndexes []int
	CostLimit    float64
}

var usersData = []userSeed{
	{Name: "User1", RouteIndexes: []int{0, 1, 2}, CostLimit: 5},
	{Name: "User2", RouteIndexes: []int{1, 2, 3}, CostLimit: 4},
	{Name: "User3", RouteIndexes: []int{0, 3, 4}, CostLimit: 6},
	{Name: "User4", RouteIndexes: []int{0, 1}, CostLimit: 3},
	{Name: "User5", RouteIndexes: []int{2, 3, 4}, CostLimit: 7},
}
