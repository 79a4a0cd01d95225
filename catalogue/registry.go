package catalogue

// Info describes a mark for overlay legends and tooltips, in the same
// ID/Name/Description/Category shape the teacher codebase uses for its
// other system registries.
type Info struct {
	ID          Mark
	Name        string
	Description string
	Category    string
}

// Registry is a lookup of Mark metadata by Mark.
type Registry struct {
	byID map[Mark]Info
}

// NewRegistry builds the standard mark registry.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[Mark]Info)}
	for _, info := range defaultInfos {
		r.Register(info)
	}
	return r
}

// Register adds or replaces a mark's metadata.
func (r *Registry) Register(info Info) {
	r.byID[info.ID] = info
}

// Get returns the metadata for a mark, and whether it was found.
func (r *Registry) Get(id Mark) (Info, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// Name returns the human-readable name of a mark, or its numeric fallback.
func (r *Registry) Name(id Mark) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id.String()
}

// ByCategory returns all marks tagged with the given category.
func (r *Registry) ByCategory(category string) []Info {
	var out []Info
	for _, info := range r.byID {
		if info.Category == category {
			out = append(out, info)
		}
	}
	return out
}

var defaultInfos = []Info{
	{ID: MarkNone, Name: "None", Description: "no icon detected", Category: "structural"},
	{ID: MarkWall, Name: "Wall", Description: "impassable cell", Category: "structural"},
	{ID: MarkEntrance, Name: "Entrance", Description: "agent spawn point", Category: "navigation"},
	{ID: MarkTreasury, Name: "Treasury", Description: "primary absorbing goal cell", Category: "navigation"},
	{ID: MarkSubtreasury, Name: "Subtreasury", Description: "secondary absorbing goal cell", Category: "navigation"},
	{ID: MarkFinalBoss, Name: "Final Boss", Description: "end-of-run encounter", Category: "encounter"},
	{ID: MarkOtherBoss, Name: "Boss", Description: "optional encounter", Category: "encounter"},
	{ID: MarkLadder, Name: "Ladder", Description: "level transition", Category: "navigation"},
	{ID: MarkTrap, Name: "Trap", Description: "hazard cell", Category: "hazard"},
	{ID: MarkLuck, Name: "Luck", Description: "bonus cell", Category: "bonus"},
	{ID: MarkRaiseWall, Name: "Raised Wall", Description: "conditionally passable wall", Category: "structural"},
	{ID: MarkDirection, Name: "Direction", Description: "directional hint marker", Category: "hint"},
	{ID: MarkScarecrow, Name: "Scarecrow", Description: "deterrent marker", Category: "hazard"},
	{ID: MarkFountain, Name: "Fountain", Description: "restorative cell", Category: "bonus"},
}
