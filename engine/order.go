package engine

// SnakeOrder precomputes the team id on the clock for every global pick
// index. Odd rounds (1-indexed) run forward, even rounds reversed when
// snake is set; a non-snake draft repeats the same order every round.
func SnakeOrder(teams, rounds int, snake bool) []int {
	order := make([]int, 0, teams*rounds)
	for r := 1; r <= rounds; r++ {
		if snake && r%2 == 0 {
			for t := teams; t >= 1; t-- {
				order = append(order, t)
			}
		} else {
			for t := 1; t <= teams; t++ {
				order = append(order, t)
			}
		}
	}
	return order
}

// RoundAndPick converts a 0-based global pick index to its 1-based round
// number and pick-in-round.
func RoundAndPick(pickIndex, teams int) (round, pickInRound int) {
	return pickIndex/teams + 1, pickIndex%teams + 1
}
