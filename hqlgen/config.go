package hqlgen

// Config selects which query templates the generator emits. Toggles are
// grouped into five categories; a nil category falls back to the defaults
// of DefaultConfig, so callers may set only the categories they care about.
type Config struct {
	CRUD         *CRUDConfig         `yaml:"crud,omitempty"`
	Discovery    *DiscoveryConfig    `yaml:"discovery,omitempty"`
	Intelligence *IntelligenceConfig `yaml:"intelligence,omitempty"`
	Pathfinding  *PathfindingConfig  `yaml:"pathfinding,omitempty"`
	Analytics    *AnalyticsConfig    `yaml:"analytics,omitempty"`
}

// CRUDConfig gates the create/read/update/delete template family.
type CRUDConfig struct {
	Create      bool `yaml:"create"`
	Upsert      bool `yaml:"upsert"`
	GetByID     bool `yaml:"get_by_id"`
	GetByUnique bool `yaml:"get_by_unique"`
	GetAll      bool `yaml:"get_all"`
	// ProControl switches GetAll to the parameterized offset/limit/order
	// variant instead of a plain range.
	ProControl bool `yaml:"pro_control"`
	Delete     bool `yaml:"delete"`
	Connect    bool `yaml:"connect"`
	UpsertEdge bool `yaml:"upsert_edge"`
	Traversal  bool `yaml:"traversal"`
}

// DiscoveryConfig gates vector, keyword, and network exploration templates.
type DiscoveryConfig struct {
	VectorSearch bool `yaml:"vector_search"`
	HybridSearch bool `yaml:"hybrid_search"`
	// Prefilter additionally specializes vector and hybrid search per
	// indexed, unique, or boolean property with an equality prefilter.
	Prefilter     bool `yaml:"prefilter"`
	KeywordSearch bool `yaml:"keyword_search"`
	AddVector     bool `yaml:"add_vector"`
	UpsertVector  bool `yaml:"upsert_vector"`
	MultiHop      bool `yaml:"multi_hop"`
	Mutual        bool `yaml:"mutual"`
}

// IntelligenceConfig gates the smart-view template family.
type IntelligenceConfig struct {
	RichDetail bool `yaml:"rich_detail"`
}

// PathfindingConfig gates the path template family.
type PathfindingConfig struct {
	Shortest bool `yaml:"shortest"`
	Weighted bool `yaml:"weighted"`
}

// AnalyticsConfig gates the aggregation template family. Min and Max are
// recognized toggles, but the current template catalogue emits no queries
// for them regardless of their value.
type AnalyticsConfig struct {
	Count   bool `yaml:"count"`
	Sum     bool `yaml:"sum"`
	Avg     bool `yaml:"avg"`
	Min     bool `yaml:"min"`
	Max     bool `yaml:"max"`
	GroupBy bool `yaml:"group_by"`
}

// DefaultConfig returns the documented default toggle set: everything on
// except prefiltered vector search and weighted pathfinding.
func DefaultConfig() Config {
	return Config{
		CRUD: &CRUDConfig{
			Create:      true,
			Upsert:      true,
			GetByID:     true,
			GetByUnique: true,
			GetAll:      true,
			ProControl:  false,
			Delete:      true,
			Connect:     true,
			UpsertEdge:  true,
			Traversal:   true,
		},
		Discovery: &DiscoveryConfig{
			VectorSearch:  true,
			HybridSearch:  true,
			Prefilter:     false,
			KeywordSearch: true,
			AddVector:     true,
			UpsertVector:  true,
			MultiHop:      true,
			Mutual:        true,
		},
		Intelligence: &IntelligenceConfig{RichDetail: true},
		Pathfinding:  &PathfindingConfig{Shortest: true, Weighted: false},
		Analytics: &AnalyticsConfig{
			Count:   true,
			Sum:     true,
			Avg:     true,
			Min:     true,
			Max:     true,
			GroupBy: true,
		},
	}
}

// withDefaults fills nil categories from DefaultConfig. Set categories are
// taken as-is, including their false flags.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CRUD == nil {
		c.CRUD = def.CRUD
	}
	if c.Discovery == nil {
		c.Discovery = def.Discovery
	}
	if c.Intelligence == nil {
		c.Intelligence = def.Intelligence
	}
	if c.Pathfinding == nil {
		c.Pathfinding = def.Pathfinding
	}
	if c.Analytics == nil {
		c.Analytics = def.Analytics
	}
	return c
}
