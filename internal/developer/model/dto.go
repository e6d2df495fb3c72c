package model

// CreateDeveloperRequest represents the request to register a new developer.
type CreateDeveloperRequest struct {
	DeveloperLevel     Level     `json:"developer_level"      binding:"required,oneof=JUNIOR JUNGNIOR SENIOR"`
	DeveloperSkillType SkillType `json:"developer_skill_type" binding:"required,oneof=FRONT_END BACK_END FULL_STACK"`
	ExperienceYears    int       `json:"experience_years"     binding:"min=0"`
	MemberID           string    `json:"member_id"            binding:"required"`
	Name               string    `json:"name"                 binding:"required"`
	Age                *int      `json:"age,omitempty"`
}

// CreateDeveloperResponse carries the identity and rule-bearing fields
// of the record just created.
type CreateDeveloperResponse struct {
	MemberID           string    `json:"member_id"`
	DeveloperLevel     Level     `json:"developer_level"`
	DeveloperSkillType SkillType `json:"developer_skill_type"`
	ExperienceYears    int       `json:"experience_years"`
}

// EditDeveloperRequest represents the request to update a developer's
// level, skill type and experience. Name, age and member id are not
// editable.
type EditDeveloperRequest struct {
	DeveloperLevel     Level     `json:"developer_level"      binding:"required,oneof=JUNIOR JUNGNIOR SENIOR"`
	DeveloperSkillType SkillType `json:"developer_skill_type" binding:"required,oneof=FRONT_END BACK_END FULL_STACK"`
	ExperienceYears    int       `json:"experience_years"     binding:"min=0"`
}

// DeveloperSummary is the listing shape.
type DeveloperSummary struct {
	Name            string `json:"name"`
	Age             *int   `json:"age,omitempty"`
	ExperienceYears int    `json:"experience_years"`
}

// DeveloperDetail is the full externally-visible shape, status included.
type DeveloperDetail struct {
	MemberID           string    `json:"member_id"`
	Name               string    `json:"name"`
	Age                *int      `json:"age,omitempty"`
	DeveloperLevel     Level     `json:"developer_level"`
	DeveloperSkillType SkillType `json:"developer_skill_type"`
	ExperienceYears    int       `json:"experience_years"`
	StatusCode         Status    `json:"status_code"`
}

// SummaryFromEntity maps a stored developer to the listing shape.
func SummaryFromEntity(d *Developer) DeveloperSummary {
	return DeveloperSummary{
		Name:            d.Name,
		Age:             d.Age,
		ExperienceYears: d.ExperienceYears,
	}
}

// DetailFromEntity maps a stored developer to the detail shape.
func DetailFromEntity(d *Developer) DeveloperDetail {
	return DeveloperDetail{
		MemberID:           d.MemberID,
		Name:               d.Name,
		Age:                d.Age,
		DeveloperLevel:     d.DeveloperLevel,
		DeveloperSkillType: d.DeveloperSkillType,
		ExperienceYears:    d.ExperienceYears,
		StatusCode:         d.StatusCode,
	}
}

// NewCreateResponse maps a stored developer to the creation response.
func NewCreateResponse(d *Developer) CreateDeveloperResponse {
	return CreateDeveloperResponse{
		MemberID:           d.MemberID,
		DeveloperLevel:     d.DeveloperLevel,
		DeveloperSkillType: d.DeveloperSkillType,
		ExperienceYears:    d.ExperienceYears,
	}
}
