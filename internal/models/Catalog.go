package models

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultBank = "default"

type Category struct {
	Name   string   `json:"name" mapstructure:"name"`
	Skills []string `json:"skills" mapstructure:"skills"`
}

// Catalog is the static configuration the engines look things up in.
// Achievements are kept in evaluation order.
type Catalog struct {
	Achievements []AchievementDefinition `mapstructure:"achievements"`
	Categories   []Category              `mapstructure:"categories"`
	Tips         map[string][]string     `mapstructure:"tips"`
	Motivations  []string                `mapstructure:"motivations"`
	Materials    map[string][]string     `mapstructure:"materials"`

	index map[string]int
}

// WithDefaults fills every empty section from DefaultCatalog and builds the lookup index.
func (c Catalog) WithDefaults() Catalog {
	def := DefaultCatalog()
	if len(c.Achievements) == 0 {
		c.Achievements = def.Achievements
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	if len(c.Tips[DefaultBank]) == 0 {
		tips := make(map[string][]string, len(c.Tips)+1)
		for k, v := range c.Tips {
			tips[k] = v
		}
		tips[DefaultBank] = def.Tips[DefaultBank]
		c.Tips = tips
	}
	if len(c.Motivations) == 0 {
		c.Motivations = def.Motivations
	}
	if len(c.Materials[DefaultBank]) == 0 {
		materials := make(map[string][]string, len(c.Materials)+1)
		for k, v := range c.Materials {
			materials[k] = v
		}
		materials[DefaultBank] = def.Materials[DefaultBank]
		c.Materials = materials
	}
	c.index = make(map[string]int, len(c.Achievements))
	for i, a := range c.Achievements {
		c.index[a.ID] = i
	}
	return c
}

func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Achievements))
	var errs []error
	for _, a := range c.Achievements {
		if a.ID == "" {
			errs = append(errs, errors.New("achievement with empty id"))
			continue
		}
		if _, ok := seen[a.ID]; ok {
			errs = append(errs, fmt.Errorf("duplicate achievement id %q", a.ID))
		}
		seen[a.ID] = struct{}{}
		if !a.Metric.Valid() {
			errs = append(errs, fmt.Errorf("achievement %q: unknown metric %q", a.ID, a.Metric))
		}
		if a.Threshold < 1 {
			errs = append(errs, fmt.Errorf("achievement %q: threshold must be positive", a.ID))
		}
		if a.Points < 0 {
			errs = append(errs, fmt.Errorf("achievement %q: negative points", a.ID))
		}
	}
	return errors.Join(errs...)
}

func (c Catalog) Achievement(id string) (AchievementDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return AchievementDefinition{}, false
	}
	return c.Achievements[i], true
}

// TipsFor returns the tip bank for a skill display name, falling back to the default bank.
func (c Catalog) TipsFor(skillName string) []string {
	return bankFor(c.Tips, skillName)
}

func (c Catalog) MaterialsFor(skillName string) []string {
	return bankFor(c.Materials, skillName)
}

func bankFor(banks map[string][]string, name string) []string {
	if bank, ok := banks[strings.ToLower(strings.TrimSpace(name))]; ok && len(bank) > 0 {
		return bank
	}
	return banks[DefaultBank]
}

func DefaultCatalog() Catalog {
	return Catalog{
		Achievements: []AchievementDefinition{
			{ID: "first_skill", Name: "First Step", Description: "Add your first skill", Points: 10, Metric: MetricSkillCount, Threshold: 1},
			{ID: "multiple_skills", Name: "Versatile", Description: "Track 3 or more skills", Points: 25, Metric: MetricSkillCount, Threshold: 3},
			{ID: "streak_3", Name: "Hot Start", Description: "Practice 3 days in a row", Points: 15, Metric: MetricMaxStreak, Threshold: 3},
			{ID: "streak_7", Name: "Week of Power", Description: "Practice 7 days in a row", Points: 50, Metric: MetricMaxStreak, Threshold: 7},
			{ID: "streak_30", Name: "Month of Persistence", Description: "Practice 30 days in a row", Points: 200, Metric: MetricMaxStreak, Threshold: 30},
			{ID: "first_tip", Name: "Curious", Description: "Receive your first tip", Points: 5, Metric: MetricTipsReceived, Threshold: 1},
			{ID: "tips_fan", Name: "Student", Description: "Receive 25 tips", Points: 30, Metric: MetricTipsReceived, Threshold: 25},
		},
		Categories: []Category{
			{Name: "Programming", Skills: []string{"Python", "JavaScript", "Go", "SQL"}},
			{Name: "Languages", Skills: []string{"English", "Spanish", "German"}},
			{Name: "Music", Skills: []string{"Guitar", "Piano", "Vocals"}},
			{Name: "Art", Skills: []string{"Drawing", "Photography"}},
			{Name: "Sports", Skills: []string{"Running", "Yoga", "Chess"}},
			{Name: "Other"},
		},
		Tips: map[string][]string{
			DefaultBank: {
				"Practice a little every day: short regular sessions beat rare long ones.",
				"Split a big goal into small steps and celebrate each one.",
				"Explain what you learned to someone else to check your understanding.",
				"Review yesterday's material before starting something new.",
				"Take a short break every 25-30 minutes of focused work.",
			},
			"python": {
				"Write small scripts for everyday tasks to practice the standard library.",
				"Read other people's code on GitHub to learn idioms.",
			},
			"guitar": {
				"Play with a metronome and raise the tempo gradually.",
				"Warm up your fingers with chromatic exercises before songs.",
			},
			"english": {
				"Watch series with English subtitles.",
				"Keep a journal of new words and review it weekly.",
			},
		},
		Motivations: []string{
			"Every expert was once a beginner. Keep going!",
			"Small daily progress adds up to big results.",
			"Consistency beats intensity.",
			"You are closer to your goal than yesterday.",
		},
		Materials: map[string][]string{
			DefaultBank: {
				"Find a structured online course for the basics",
				"Join a community of learners to share progress",
				"Pick one book and read a chapter a day",
			},
			"python": {
				"The official Python tutorial: https://docs.python.org/3/tutorial/",
				"Automate the Boring Stuff with Python",
			},
		},
	}
}
