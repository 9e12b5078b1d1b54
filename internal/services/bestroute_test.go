package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigation-api/internal/entities"
)

// sampleRoutes - набор A..E из сидера.
func sampleRoutes() []entities.Route {
	return []entities.Route{
		{ID: 1, Name: "Route A", Cost: 5, Traffic: 30},
		{ID: 2, Name: "Route B", Cost: 3, Traffic: 10},
		{ID: 3, Name: "Route C", Cost: 7, Traffic: 50},
		{ID: 4, Name: "Route D", Cost: 2, Traffic: 20},
		{ID: 5, Name: "Route E", Cost: 4, Traffic: 40},
	}
}

func TestSelectBestRoute(t *testing.T) {
	routes := sampleRoutes()

	cases := []struct {
		name   string
		user   entities.User
		wantID int64
	}{
		{"cheapest allowed within limit", entities.User{AllowedRoutes: []int64{1, 2, 3}, CostLimit: 5}, 2},
		{"limit is inclusive", entities.User{AllowedRoutes: []int64{1, 3}, CostLimit: 5}, 1},
		{"cheaper route outside allowed set is ignored", entities.User{AllowedRoutes: []int64{1, 5}, CostLimit: 10}, 5},
		{"User2 from seed", entities.User{AllowedRoutes: []int64{2, 3, 4}, CostLimit: 4}, 4},
		{"User4 from seed", entities.User{AllowedRoutes: []int64{1, 2}, CostLimit: 3}, 2},
		{"User5 from seed", entities.User{AllowedRoutes: []int64{3, 4, 5}, CostLimit: 7}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			best := SelectBestRoute(tc.user, routes)
			require.NotNil(t, best)
			assert.Equal(t, tc.wantID, best.ID)
		})
	}
}

func TestSelectBestRoute_NoCandidate(t *testing.T) {
	t.Run("allowed route over limit", func(t *testing.T) {
		routes := []entities.Route{{ID: 1, Name: "Route A", Cost: 10, Traffic: 30}}
		assert.Nil(t, SelectBestRoute(entities.User{AllowedRoutes: []int64{1}, CostLimit: 5}, routes))
	})

	t.Run("empty allowed list", func(t *testing.T) {
		assert.Nil(t, SelectBestRoute(entities.User{CostLimit: 100}, sampleRoutes()))
	})

	t.Run("no routes at all", func(t *testing.T) {
		assert.Nil(t, SelectBestRoute(entities.User{AllowedRoutes: []int64{1}, CostLimit: 100}, nil))
	})

	t.Run("allowed ids that do not exist", func(t *testing.T) {
		assert.Nil(t, SelectBestRoute(entities.User{AllowedRoutes: []int64{42}, CostLimit: 100}, sampleRoutes()))
	})
}

func TestSelectBestRoute_TieKeepsFirst(t *testing.T) {
	routes := []entities.Route{
		{ID: 7, Name: "first", Cost: 3},
		{ID: 2, Name: "second", Cost: 3},
		{ID: 9, Name: "third", Cost: 3},
	}
	user := entities.User{AllowedRoutes: []int64{9, 2, 7}, CostLimit: 3}

	best := SelectBestRoute(user, routes)
	require.NotNil(t, best)
	assert.Equal(t, int64(7), best.ID)
}

func TestSelectBestRoute_ReturnsCopy(t *testing.T) {
	routes := sampleRoutes()
	best := SelectBestRoute(entities.User{AllowedRoutes: []int64{2}, CostLimit: 5}, routes)
	require.NotNil(t, best)

	best.Name = "changed"
	assert.Equal(t, "Route B", routes[1].Name)
}

// Проверка свойства на случайных данных: результат либо nil, либо разрешённый
// маршрут в пределах лимита, и нет подходящего маршрута дешевле.
func TestSelectBestRoute_Property(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		routes := make([]entities.Route, rnd.Intn(8))
		for j := range routes {
			routes[j] = entities.Route{ID: int64(j + 1), Cost: float64(rnd.Intn(10))}
		}
		user := entities.User{CostLimit: float64(rnd.Intn(10))}
		for id := int64(1); id <= 8; id++ {
			if rnd.Intn(2) == 0 {
				user.AllowedRoutes = append(user.AllowedRoutes, id)
			}
		}

		best := SelectBestRoute(user, routes)

		var qualifying []entities.Route
		for _, r := range routes {
			if user.AllowsRoute(r.ID) && r.Cost <= user.CostLimit {
				qualifying = append(qualifying, r)
			}
		}

		if len(qualifying) == 0 {
			assert.Nil(t, best)
			continue
		}
		require.NotNil(t, best)
		assert.True(t, user.AllowsRoute(best.ID))
		assert.LessOrEqual(t, best.Cost, user.CostLimit)
		for _, r := range qualifying {
			assert.GreaterOrEqual(t, r.Cost, best.Cost)
		}
		for _, r := range qualifying {
			if r.Cost == best.Cost {
				assert.Equal(t, r.ID, best.ID, "при равной стоимости должен выигрывать первый")
				break
			}
		}
	}
}
