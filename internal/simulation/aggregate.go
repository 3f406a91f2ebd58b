package simulation

// StrategyStats aggregates the games played by one strategy
type StrategyStats struct {
	Count      int            `json:"count"`
	Outcomes   map[string]int `json:"outcomes"`
	TotalDays  int            `json:"total_days"`
	TotalMoney float64        `json:"total_money"`
	AvgDays    float64        `json:"avg_days"`
	AvgMoney   float64        `json:"avg_money"`
}

// AggregateStats summarises a batch
type AggregateStats struct {
	TotalGames         int                       `json:"total_games"`
	Outcomes           map[string]int            `json:"outcomes"`
	ByStrategy         map[string]*StrategyStats `json:"by_strategy"`
	AvgExecutionTimeMs float64                   `json:"avg_execution_time_ms"`
}

// Aggregate totals outcomes overall and per strategy
func Aggregate(results []GameResult) AggregateStats {
	stats := AggregateStats{
		TotalGames: len(results),
		Outcomes:   make(map[string]int),
		ByStrategy: make(map[string]*StrategyStats),
	}

	var execMs int64
	for _, r := range results {
		stats.Outcomes[r.Outcome]++
		execMs += r.ExecutionTimeMs

		s, ok := stats.ByStrategy[r.Strategy]
		if !ok {
			s = &StrategyStats{Outcomes: make(map[string]int)}
			stats.ByStrategy[r.Strategy] = s
		}
		s.Count++
		s.Outcomes[r.Outcome]++
		s.TotalDays += r.Duration
		s.TotalMoney += r.FinalState.Money
	}

	for _, s := range stats.ByStrategy {
		s.AvgDays = round2(float64(s.TotalDays) / float64(s.Count))
		s.AvgMoney = round2(s.TotalMoney / float64(s.Count))
		s.TotalMoney = round2(s.TotalMoney)
	}
	if len(results) > 0 {
		stats.AvgExecutionTimeMs = round2(float64(execMs) / float64(len(results)))
	}
	return stats
}
