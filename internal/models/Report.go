package models

import "time"

type SkillShare struct {
	Key              string  `json:"key"`
	Name             string  `json:"name"`
	TotalTimeMinutes int     `json:"total_time_minutes"`
	Share            float64 `json:"share"`
}

// UserReport is the personal statistics view of one user.
type UserReport struct {
	DaysRegistered      int          `json:"days_registered"`
	TotalSkills         int          `json:"total_skills"`
	ActiveStreaks       int          `json:"active_streaks"`
	BestStreak          int          `json:"best_streak"`
	TotalPoints         int          `json:"total_points"`
	Achievements        int          `json:"achievements"`
	TotalSessions       int          `json:"total_sessions"`
	TotalTimeMinutes    int          `json:"total_time_minutes"`
	AverageSession      float64      `json:"average_session"`
	SessionsPerDay      float64      `json:"sessions_per_day"`
	TipsReceived        int          `json:"tips_received"`
	MotivationsReceived int          `json:"motivations_received"`
	Ranking             []SkillShare `json:"ranking"`
}

type SkillReport struct {
	Key              string     `json:"key"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	TotalTimeMinutes int        `json:"total_time_minutes"`
	Sessions         int        `json:"sessions"`
	AverageSession   float64    `json:"average_session"`
	Streak           int        `json:"streak"`
	BestStreak       int        `json:"best_streak"`
	DaysTracked      int        `json:"days_tracked"`
	Consistency      float64    `json:"consistency"`
	GoalMinutes      int        `json:"goal_minutes"`
	GoalProgress     float64    `json:"goal_progress"`
	GoalReached      bool       `json:"goal_reached"`
	LastSession      *time.Time `json:"last_session"`
	RecentNotes      []Note     `json:"recent_notes"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Skills   int    `json:"skills"`
}

type FleetReport struct {
	TotalUsers         int             `json:"total_users"`
	ActiveUsers        int             `json:"active_users"`
	TotalSkills        int             `json:"total_skills"`
	TotalSessions      int             `json:"total_sessions"`
	TotalTimeMinutes   int             `json:"total_time_minutes"`
	PopularCategories  []CategoryCount `json:"popular_categories"`
	AvgSkillsPerUser   float64         `json:"avg_skills_per_user"`
	AvgSessionsPerUser float64         `json:"avg_sessions_per_user"`
}

type ActivityReport struct {
	TotalUsers     int     `json:"total_users"`
	ActiveToday    int     `json:"active_today"`
	ActiveWeek     int     `json:"active_week"`
	ActiveMonth    int     `json:"active_month"`
	SessionsToday  int     `json:"sessions_today"`
	SessionsWeek   int     `json:"sessions_week"`
	RetentionWeek  float64 `json:"retention_week"`
	RetentionMonth float64 `json:"retention_month"`
}

type AdoptionEntry struct {
	Achievement AchievementDefinition `json:"achievement"`
	Count       int                   `json:"count"`
	Percentage  float64               `json:"percentage"`
}

type AdoptionReport struct {
	TotalUsers  int             `json:"total_users"`
	TotalPoints int             `json:"total_points"`
	Entries     []AdoptionEntry `json:"entries"`
}

type TopUser struct {
	UserID           string `json:"user_id"`
	TotalTimeMinutes int    `json:"total_time_minutes"`
	TotalSessions    int    `json:"total_sessions"`
	TotalPoints      int    `json:"total_points"`
	Skills           int    `json:"skills"`
}

// AchievementsOverview splits the catalog into what a user holds and what is still locked.
type AchievementsOverview struct {
	Earned      []AchievementDefinition `json:"earned"`
	Locked      []AchievementDefinition `json:"locked"`
	EarnedCount int                     `json:"earned_count"`
	Total       int                     `json:"total"`
	Points      int                     `json:"points"`
}

type TipResult struct {
	Tip             string                  `json:"tip"`
	Skill           string                  `json:"skill,omitempty"`
	NewAchievements []AchievementDefinition `json:"new_achievements"`
}

type BroadcastResult struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}
