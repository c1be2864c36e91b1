package domain

// Phase is the top-level UI mode. It is derived from whether the briefing
// is locked and is never stored on its own.
type Phase string

const (
	PhaseBriefing  Phase = "briefing"
	PhaseWorkspace Phase = "workspace"
)

type BadgeSeverity string

const (
	BadgeInfo    BadgeSeverity = "info"
	BadgeWarning BadgeSeverity = "warning"
	BadgeSuccess BadgeSeverity = "success"
)

// ValidBadgeSeverities is the canonical set of accepted badge strings.
var ValidBadgeSeverities = map[string]bool{
	"info": true, "warning": true, "success": true,
}

// ModuleKey identifies one of the workspace data views.
type ModuleKey string

const (
	ModuleArticle   ModuleKey = "article"
	ModuleMaterials ModuleKey = "materials"
	ModuleColors    ModuleKey = "colors"
	ModuleCalendar  ModuleKey = "calendar"
)

// DefaultModule is activated whenever a briefing is submitted.
const DefaultModule = ModuleArticle

// ModuleKeys lists the modules in tab order.
var ModuleKeys = []ModuleKey{ModuleArticle, ModuleMaterials, ModuleColors, ModuleCalendar}

// ParseModuleKey returns the ModuleKey for s and whether it is known.
func ParseModuleKey(s string) (ModuleKey, bool) {
	k := ModuleKey(s)
	return k, k.Valid()
}

// Valid reports whether k is one of the four known modules.
func (k ModuleKey) Valid() bool {
	switch k {
	case ModuleArticle, ModuleMaterials, ModuleColors, ModuleCalendar:
		return true
	}
	return false
}

// Label returns the tab caption for k.
func (k ModuleKey) Label() string {
	switch k {
	case ModuleArticle:
		return "Article Status"
	case ModuleMaterials:
		return "Materials"
	case ModuleColors:
		return "Colors"
	case ModuleCalendar:
		return "Calendar"
	default:
		return string(k)
	}
}
