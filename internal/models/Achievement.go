package models

// AchievementMetric names the piece of user state an achievement threshold is compared against.
type AchievementMetric string

const (
	MetricSkillCount    AchievementMetric = "skill_count"
	MetricMaxStreak     AchievementMetric = "max_streak"
	MetricTipsReceived  AchievementMetric = "tips_received"
	MetricTotalSessions AchievementMetric = "total_sessions"
	MetricTotalMinutes  AchievementMetric = "total_minutes"
)

func (m AchievementMetric) Valid() bool {
	switch m {
	case MetricSkillCount, MetricMaxStreak, MetricTipsReceived, MetricTotalSessions, MetricTotalMinutes:
		return true
	}
	return false
}

func (m AchievementMetric) Value(u *User) int {
	switch m {
	case MetricSkillCount:
		return len(u.Skills)
	case MetricMaxStreak:
		return u.MaxStreak()
	case MetricTipsReceived:
		return u.Statistics.TipsReceived
	case MetricTotalSessions:
		return u.Statistics.TotalSessions
	case MetricTotalMinutes:
		return u.Statistics.TotalTimeMinutes
	}
	return 0
}

type AchievementDefinition struct {
	ID          string            `json:"id" mapstructure:"id"`
	Name        string            `json:"name" mapstructure:"name"`
	Description string            `json:"description" mapstructure:"description"`
	Points      int               `json:"points" mapstructure:"points"`
	Metric      AchievementMetric `json:"metric" mapstructure:"metric"`
	Threshold   int               `json:"threshold" mapstructure:"threshold"`
}

func (d AchievementDefinition) Qualifies(u *User) bool {
	return d.Metric.Value(u) >= d.Threshold
}

// AchievementProgress is the distance of a user to one definition.
type AchievementProgress struct {
	Achievement AchievementDefinition `json:"achievement"`
	Current     int                   `json:"current"`
	Target      int                   `json:"target"`
	Reached     bool                  `json:"reached"`
}
