package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailFromEntity(t *testing.T) {
	age := 28
	developer := &Developer{
		ID:                 7,
		MemberID:           "dev-1",
		Name:               "Alice",
		Age:                &age,
		DeveloperLevel:     LevelJungnior,
		DeveloperSkillType: SkillFullStack,
		ExperienceYears:    6,
		StatusCode:         StatusEmployed,
	}

	detail := DetailFromEntity(developer)

	assert.Equal(t, "dev-1", detail.MemberID)
	assert.Equal(t, "Alice", detail.Name)
	assert.Equal(t, &age, detail.Age)
	assert.Equal(t, LevelJungnior, detail.DeveloperLevel)
	assert.Equal(t, SkillFullStack, detail.DeveloperSkillType)
	assert.Equal(t, 6, detail.ExperienceYears)
	assert.Equal(t, StatusEmployed, detail.StatusCode)
}

func TestSummaryFromEntity(t *testing.T) {
	t.Run("carries name, age and experience", func(t *testing.T) {
		age := 28
		summary := SummaryFromEntity(&Developer{
			MemberID:        "dev-1",
			Name:            "Alice",
			Age:             &age,
			ExperienceYears: 6,
		})

		assert.Equal(t, "Alice", summary.Name)
		assert.Equal(t, &age, summary.Age)
		assert.Equal(t, 6, summary.ExperienceYears)
	})

	t.Run("nil age stays nil", func(t *testing.T) {
		summary := SummaryFromEntity(&Developer{Name: "Bob"})

		assert.Nil(t, summary.Age)
	})
}

func TestNewCreateResponse(t *testing.T) {
	resp := NewCreateResponse(&Developer{
		MemberID:           "dev-1",
		Name:               "Alice",
		DeveloperLevel:     LevelSenior,
		DeveloperSkillType: SkillBackEnd,
		ExperienceYears:    12,
		StatusCode:         StatusEmployed,
	})

	assert.Equal(t, "dev-1", resp.MemberID)
	assert.Equal(t, LevelSenior, resp.DeveloperLevel)
	assert.Equal(t, SkillBackEnd, resp.DeveloperSkillType)
	assert.Equal(t, 12, resp.ExperienceYears)
}
