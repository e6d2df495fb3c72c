package model

// Level is the declared seniority tier of a developer.
type Level string

// Seniority tiers. JUNGNIOR is the domain's name for the mid tier
// between JUNIOR and SENIOR.
const (
	LevelJunior   Level = "JUNIOR"
	LevelJungnior Level = "JUNGNIOR"
	LevelSenior   Level = "SENIOR"
)

// SkillType is the developer's area of work.
type SkillType string

// Skill types.
const (
	SkillFrontEnd  SkillType = "FRONT_END"
	SkillBackEnd   SkillType = "BACK_END"
	SkillFullStack SkillType = "FULL_STACK"
)

// Status is the lifecycle marker on a developer record.
type Status string

// Lifecycle statuses. A developer starts EMPLOYED and moves to RETIRED
// on deletion; there is no path back.
const (
	StatusEmployed Status = "EMPLOYED"
	StatusRetired  Status = "RETIRED"
)
