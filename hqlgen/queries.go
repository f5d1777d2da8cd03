package hqlgen

import (
	"strings"

	"github.com/nodfans/helixdb-explorer-sub000/ast"
	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

// relatedEdgeCap bounds how many related-edge count fields a rich-detail
// view projects, in model order.
const relatedEdgeCap = 3

// defaultRangeLimit is the page size of the plain GetAll template.
const defaultRangeLimit = "100"

// vectorParam is the parameter type of embedding arguments.
var vectorParam = "[" + hql.TypeF64.String() + "]"

type section struct {
	name    string
	queries []ast.Query
}

// GenerateQueries renders the categorized query library for the model.
// Per entity it builds up to five buckets (CRUD, discovery, pathfinding,
// smart views, analytics); non-empty buckets get a section comment header
// and are joined by blank lines, as are entities. Nil config categories
// merge to DefaultConfig. Output is trimmed.
func GenerateQueries(entities []Entity, cfg Config) string {
	cfg = cfg.withDefaults()
	var blocks []string
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		sections := []section{
			{"CRUD", crudQueries(e, *cfg.CRUD)},
			{"DISCOVERY", discoveryQueries(e, entities, *cfg.Discovery)},
			{"PATHFINDING", pathfindingQueries(e, *cfg.Pathfinding)},
			{"SMART VIEWS", smartViewQueries(e, entities, *cfg.Intelligence)},
			{"ANALYTICS", analyticsQueries(e, *cfg.Analytics)},
		}
		var buckets []string
		for _, s := range sections {
			if len(s.queries) == 0 {
				continue
			}
			rendered := make([]string, 0, len(s.queries))
			for _, q := range s.queries {
				rendered = append(rendered, q.String())
			}
			buckets = append(buckets, "// --- "+s.name+" ---\n"+strings.Join(rendered, "\n\n"))
		}
		if len(buckets) > 0 {
			blocks = append(blocks, strings.Join(buckets, "\n\n"))
		}
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// --- CRUD ---

func crudQueries(e Entity, c CRUDConfig) []ast.Query {
	var qs []ast.Query
	switch e.Kind {
	case KindNode:
		if c.Create {
			qs = append(qs, createNode(e))
		}
		// Upsert has nothing to assign besides the key when there are no
		// properties, so it is skipped entirely.
		if c.Upsert && len(e.Properties) > 0 {
			qs = append(qs, upsertNode(e))
		}
		if c.GetByID {
			qs = append(qs, getByID(e))
		}
		if c.GetByUnique {
			for _, p := range e.Properties {
				if p.IsUnique {
					qs = append(qs, getByUnique(e, p))
				}
			}
		}
		if c.GetAll {
			qs = append(qs, getAll(e, c.ProControl))
		}
		if c.Delete {
			qs = append(qs, deleteNode(e))
		}
	case KindEdge:
		if e.From == "" || e.To == "" {
			return nil
		}
		if c.Connect {
			qs = append(qs, connectEdge(e, hql.StepAddE, "Connect"))
		}
		if c.UpsertEdge {
			qs = append(qs, connectEdge(e, hql.StepUpsertE, "Upsert"))
		}
		if c.Traversal {
			qs = append(qs, traverseEdge(e))
		}
	}
	return qs
}

func createNode(e Entity) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	src := ast.Traversal{Source: hql.StepAddN, TypeParam: name}
	if len(e.Properties) > 0 {
		src.Args = []ast.Expr{propProjection(e.Properties)}
	}
	return ast.Query{
		Name:   "Create" + name,
		Params: propParams(e.Properties),
		Stmts:  []ast.Stmt{ast.Assign{Name: v, Value: src}},
		Return: ast.Param{Name: v},
	}
}

func upsertNode(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name:   "Upsert" + name,
		Params: append([]ast.QueryParam{idParam("id")}, propParams(e.Properties)...),
		Stmts: []ast.Stmt{
			ast.Assign{Name: "existing", Value: byID(hql.PrefixNode, name, "id")},
			ast.Assign{Name: "updated", Value: ast.Chain{
				Base: ast.Param{Name: "existing"},
				Ops:  []ast.Op{ast.Step{Name: hql.StepUpsertN, Args: []ast.Expr{propProjection(e.Properties)}}},
			}},
		},
		Return: ast.Param{Name: "updated"},
	}
}

func getByID(e Entity) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	return ast.Query{
		Name:   "Get" + name + "ById",
		Params: []ast.QueryParam{idParam("id")},
		Stmts:  []ast.Stmt{ast.Assign{Name: v, Value: byID(hql.PrefixNode, name, "id")}},
		Return: ast.Param{Name: v},
	}
}

func getByUnique(e Entity, p Property) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	filter := ast.Step{Name: hql.StepWhere, Args: []ast.Expr{propEquals(p.Name, "val")}}
	return ast.Query{
		Name:   "Get" + name + "By" + PascalCase(p.Name),
		Params: []ast.QueryParam{{Name: "val", Type: p.ParamType()}},
		Stmts: []ast.Stmt{ast.Assign{Name: v, Value: ast.Traversal{
			Source:    hql.PrefixNode,
			TypeParam: name,
			Steps:     []ast.Op{filter},
		}}},
		Return: ast.Param{Name: v},
	}
}

func getAll(e Entity, pro bool) ast.Query {
	name := PascalCase(e.Name)
	plural := Plural(name)
	v := SnakeCase(plural)
	src := ast.Traversal{Source: hql.PrefixNode, TypeParam: name}
	q := ast.Query{Name: "GetAll" + plural, Return: ast.Param{Name: v}}
	if pro {
		q.Params = []ast.QueryParam{
			{Name: "offset", Type: hql.TypeI32.String()},
			{Name: "limit", Type: hql.TypeI32.String()},
		}
		if len(e.Properties) > 0 {
			src.Steps = append(src.Steps, ast.Step{
				Name:      hql.StepOrder,
				TypeParam: hql.OrderAsc,
				Args:      []ast.Expr{ast.PropAccess{Name: e.Properties[0].Name}},
			})
		}
		src.Steps = append(src.Steps, ast.Step{Name: hql.StepRange, Args: []ast.Expr{
			ast.Param{Name: "offset"},
			ast.Param{Name: "limit"},
		}})
	} else {
		src.Steps = append(src.Steps, ast.Step{Name: hql.StepRange, Args: []ast.Expr{
			ast.Literal{Value: "0", Type: hql.TypeI32},
			ast.Literal{Value: defaultRangeLimit, Type: hql.TypeI32},
		}})
	}
	q.Stmts = []ast.Stmt{ast.Assign{Name: v, Value: src}}
	return q
}

func deleteNode(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name:   "Delete" + name,
		Params: []ast.QueryParam{idParam("id")},
		Stmts:  []ast.Stmt{ast.Drop{Target: byID(hql.PrefixNode, name, "id")}},
		Return: ast.Literal{Value: "Deleted", Type: hql.TypeString},
	}
}

// connectEdge builds both the Connect (AddE) and UpsertEdge (UpsertE)
// templates; only the source step and name prefix differ.
func connectEdge(e Entity, source, prefix string) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	src := ast.Traversal{Source: source, TypeParam: name}
	if len(e.Properties) > 0 {
		src.Args = []ast.Expr{propProjection(e.Properties)}
	}
	src.Steps = []ast.Op{
		ast.Step{Name: hql.StepFrom, Args: []ast.Expr{ast.Param{Name: "from_id"}}},
		ast.Step{Name: hql.StepTo, Args: []ast.Expr{ast.Param{Name: "to_id"}}},
	}
	return ast.Query{
		Name:   prefix + name,
		Params: append([]ast.QueryParam{idParam("from_id"), idParam("to_id")}, propParams(e.Properties)...),
		Stmts:  []ast.Stmt{ast.Assign{Name: v, Value: src}},
		Return: ast.Param{Name: v},
	}
}

func traverseEdge(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name:   "Traverse" + name,
		Params: []ast.QueryParam{idParam("start_id")},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "source", Value: byID(hql.PrefixNode, PascalCase(e.From), "start_id")},
			ast.Assign{Name: "connected", Value: ast.Traversal{
				Source: "source",
				Steps:  []ast.Op{ast.Step{Name: hql.StepOut, TypeParam: name}},
			}},
		},
		Return: ast.Param{Name: "connected"},
	}
}

// --- Discovery ---

func discoveryQueries(e Entity, all []Entity, c DiscoveryConfig) []ast.Query {
	var qs []ast.Query
	switch e.Kind {
	case KindVector:
		if c.VectorSearch {
			qs = append(qs, vectorSearch(e))
		}
		if c.HybridSearch {
			qs = append(qs, hybridSearch(e))
		}
		if c.Prefilter {
			for _, p := range filterableProps(e) {
				if c.VectorSearch {
					qs = append(qs, prefilteredSearch(e, p))
				}
				if c.HybridSearch {
					qs = append(qs, prefilteredHybrid(e, p))
				}
			}
		}
		if c.AddVector {
			qs = append(qs, addVector(e))
		}
		if c.UpsertVector {
			qs = append(qs, upsertVector(e))
		}
	case KindEdge:
		if e.From != "" && e.To != "" {
			if c.MultiHop {
				qs = append(qs, exploreNetwork(e))
			}
			if c.Mutual {
				qs = append(qs, mutualConnections(e))
			}
		}
	}
	if c.KeywordSearch && hasTextProperty(e) {
		qs = append(qs, keywordSearch(e))
	}
	return qs
}

func vectorSearch(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name:   "Search" + name,
		Params: []ast.QueryParam{{Name: "query", Type: vectorParam}, {Name: "k", Type: hql.TypeI32.String()}},
		Stmts:  []ast.Stmt{ast.Assign{Name: "results", Value: searchV(name)}},
		Return: ast.Param{Name: "results"},
	}
}

func prefilteredSearch(e Entity, p Property) ast.Query {
	name := PascalCase(e.Name)
	src := searchV(name)
	src.Steps = []ast.Op{prefilterStep(p)}
	return ast.Query{
		Name: "Search" + name + "By" + PascalCase(p.Name),
		Params: []ast.QueryParam{
			{Name: "query", Type: vectorParam},
			{Name: "k", Type: hql.TypeI32.String()},
			{Name: "val", Type: p.ParamType()},
		},
		Stmts:  []ast.Stmt{ast.Assign{Name: "results", Value: src}},
		Return: ast.Param{Name: "results"},
	}
}

func hybridSearch(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name: "HybridSearch" + name,
		Params: []ast.QueryParam{
			{Name: "query", Type: vectorParam},
			{Name: "query_text", Type: hql.TypeString.String()},
			{Name: "k", Type: hql.TypeI32.String()},
		},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "candidates", Value: searchV(name)},
			ast.Assign{Name: "results", Value: ast.Traversal{
				Source: "candidates",
				Steps:  []ast.Op{rerankStep()},
			}},
		},
		Return: ast.Param{Name: "results"},
	}
}

func prefilteredHybrid(e Entity, p Property) ast.Query {
	name := PascalCase(e.Name)
	src := searchV(name)
	src.Steps = []ast.Op{prefilterStep(p)}
	return ast.Query{
		Name: "HybridSearch" + name + "By" + PascalCase(p.Name),
		Params: []ast.QueryParam{
			{Name: "query", Type: vectorParam},
			{Name: "query_text", Type: hql.TypeString.String()},
			{Name: "k", Type: hql.TypeI32.String()},
			{Name: "val", Type: p.ParamType()},
		},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "candidates", Value: src},
			ast.Assign{Name: "results", Value: ast.Traversal{
				Source: "candidates",
				Steps:  []ast.Op{rerankStep()},
			}},
		},
		Return: ast.Param{Name: "results"},
	}
}

func addVector(e Entity) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	args := []ast.Expr{ast.Param{Name: "vector"}}
	if len(e.Properties) > 0 {
		args = append(args, propProjection(e.Properties))
	}
	return ast.Query{
		Name:   "Add" + name,
		Params: append([]ast.QueryParam{{Name: "vector", Type: vectorParam}}, propParams(e.Properties)...),
		Stmts: []ast.Stmt{ast.Assign{Name: v, Value: ast.Traversal{
			Source:    hql.StepAddV,
			TypeParam: name,
			Args:      args,
		}}},
		Return: ast.Param{Name: v},
	}
}

func upsertVector(e Entity) ast.Query {
	name := PascalCase(e.Name)
	args := []ast.Expr{ast.Param{Name: "vector"}}
	if len(e.Properties) > 0 {
		args = append(args, propProjection(e.Properties))
	}
	return ast.Query{
		Name: "Upsert" + name,
		Params: append([]ast.QueryParam{
			idParam("id"),
			{Name: "vector", Type: vectorParam},
		}, propParams(e.Properties)...),
		Stmts: []ast.Stmt{
			ast.Assign{Name: "existing", Value: byID(hql.PrefixVector, name, "id")},
			ast.Assign{Name: "updated", Value: ast.Chain{
				Base: ast.Param{Name: "existing"},
				Ops:  []ast.Op{ast.Step{Name: hql.StepUpsertV, Args: args}},
			}},
		},
		Return: ast.Param{Name: "updated"},
	}
}

func keywordSearch(e Entity) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name: "Search" + Plural(name) + "ByKeyword",
		Params: []ast.QueryParam{
			{Name: "query", Type: hql.TypeString.String()},
			{Name: "limit", Type: hql.TypeI32.String()},
		},
		Stmts: []ast.Stmt{ast.Assign{Name: "results", Value: ast.Traversal{
			Source:    hql.StepSearchBM25,
			TypeParam: name,
			Args:      []ast.Expr{ast.Param{Name: "query"}, ast.Param{Name: "limit"}},
		}}},
		Return: ast.Param{Name: "results"},
	}
}

func exploreNetwork(e Entity) ast.Query {
	name := PascalCase(e.Name)
	hop := ast.Step{Name: hql.StepOut, TypeParam: name}
	steps := []ast.Op{hop}
	// A self-referential relation explores two hops of the same edge;
	// otherwise the second hop would land on the wrong entity kind.
	if strings.EqualFold(e.From, e.To) {
		steps = append(steps, hop)
	}
	steps = append(steps, ast.Step{Name: hql.StepRange, Args: []ast.Expr{
		ast.Literal{Value: "0", Type: hql.TypeI32},
		ast.Param{Name: "limit"},
	}})
	return ast.Query{
		Name:   "Explore" + name + "Network",
		Params: []ast.QueryParam{idParam("start_id"), {Name: "limit", Type: hql.TypeI32.String()}},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "start", Value: byID(hql.PrefixNode, PascalCase(e.From), "start_id")},
			ast.Assign{Name: "network", Value: ast.Traversal{Source: "start", Steps: steps}},
		},
		Return: ast.Param{Name: "network"},
	}
}

func mutualConnections(e Entity) ast.Query {
	name := PascalCase(e.Name)
	// A mutual connection is one whose own outgoing edge leads back to
	// the starting element.
	reciprocal := ast.Call{Name: hql.KwExists, Args: []ast.Expr{ast.Chain{
		Base: ast.Anon{},
		Ops: []ast.Op{
			ast.Step{Name: hql.StepOut, TypeParam: name},
			ast.Step{Name: hql.StepWhere, Args: []ast.Expr{ast.Chain{
				Base: ast.IDAccess{},
				Ops:  []ast.Op{ast.Step{Name: hql.OpEQ, Args: []ast.Expr{ast.Param{Name: "start_id"}}}},
			}}},
		},
	}}}
	return ast.Query{
		Name:   "GetMutual" + name,
		Params: []ast.QueryParam{idParam("start_id")},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "start", Value: byID(hql.PrefixNode, PascalCase(e.From), "start_id")},
			ast.Assign{Name: "mutuals", Value: ast.Traversal{
				Source: "start",
				Steps: []ast.Op{
					ast.Step{Name: hql.StepOut, TypeParam: name},
					ast.Step{Name: hql.StepWhere, Args: []ast.Expr{reciprocal}},
				},
			}},
		},
		Return: ast.Param{Name: "mutuals"},
	}
}

// --- Pathfinding ---

func pathfindingQueries(e Entity, c PathfindingConfig) []ast.Query {
	if e.Kind != KindEdge || e.From == "" || e.To == "" {
		return nil
	}
	var qs []ast.Query
	if c.Shortest {
		qs = append(qs, shortestPath(e, nil))
	}
	if c.Weighted {
		if p, ok := firstNumericProp(e); ok {
			qs = append(qs, shortestPath(e, &p))
		}
	}
	return qs
}

// shortestPath builds the breadth-first template; with a weight property it
// builds the weighted variant instead.
func shortestPath(e Entity, weight *Property) ast.Query {
	name := PascalCase(e.Name)
	qname := "Find" + name + "Path"
	args := []ast.Expr{ast.Param{Name: "to_id"}}
	if weight != nil {
		qname = "FindWeighted" + name + "Path"
		args = append(args, ast.PropAccess{Name: weight.Name})
	}
	return ast.Query{
		Name:   qname,
		Params: []ast.QueryParam{idParam("from_id"), idParam("to_id")},
		Stmts: []ast.Stmt{
			ast.Assign{Name: "start", Value: byID(hql.PrefixNode, PascalCase(e.From), "from_id")},
			ast.Assign{Name: "path", Value: ast.Traversal{
				Source: "start",
				Steps:  []ast.Op{ast.Step{Name: hql.StepShortestPath, TypeParam: name, Args: args}},
			}},
		},
		Return: ast.Param{Name: "path"},
	}
}

// --- Smart views ---

func smartViewQueries(e Entity, all []Entity, c IntelligenceConfig) []ast.Query {
	if e.Kind != KindNode || !c.RichDetail {
		return nil
	}
	return []ast.Query{richDetail(e, all)}
}

// richDetail projects every own property plus an edge-count field for up to
// relatedEdgeCap related edges, in model order.
func richDetail(e Entity, all []Entity) ast.Query {
	name := PascalCase(e.Name)
	v := varName(e)
	var fields []ast.Field
	for _, p := range e.Properties {
		fields = append(fields, ast.Field{Name: p.Name, Value: ast.PropAccess{Name: p.Name}})
	}
	related := 0
	for _, other := range all {
		if other.Kind != KindEdge || related == relatedEdgeCap {
			continue
		}
		var dir string
		switch {
		case strings.EqualFold(other.From, e.Name):
			dir = hql.StepOutE
		case strings.EqualFold(other.To, e.Name):
			dir = hql.StepInE
		default:
			continue
		}
		fields = append(fields, ast.Field{
			Name: SnakeCase(PascalCase(other.Name)) + "_count",
			Value: ast.Chain{Base: ast.Anon{}, Ops: []ast.Op{
				ast.Step{Name: dir, TypeParam: PascalCase(other.Name)},
				ast.Step{Name: hql.StepCount},
			}},
		})
		related++
	}
	return ast.Query{
		Name:   "Get" + name + "RichDetail",
		Params: []ast.QueryParam{idParam("id")},
		Stmts:  []ast.Stmt{ast.Assign{Name: v, Value: byID(hql.PrefixNode, name, "id")}},
		Return: ast.Chain{Base: ast.Param{Name: v}, Ops: []ast.Op{ast.Projection{Fields: fields}}},
	}
}

// --- Analytics ---

func analyticsQueries(e Entity, c AnalyticsConfig) []ast.Query {
	if e.Kind != KindNode {
		return nil
	}
	name := PascalCase(e.Name)
	plural := Plural(name)
	var qs []ast.Query
	if c.Count {
		qs = append(qs, ast.Query{
			Name: "Count" + plural,
			Stmts: []ast.Stmt{ast.Assign{Name: "count", Value: ast.Traversal{
				Source:    hql.PrefixNode,
				TypeParam: name,
				Steps:     []ast.Op{ast.Step{Name: hql.StepCount}},
			}}},
			Return: ast.Param{Name: "count"},
		})
	}
	for _, p := range e.Properties {
		if p.IsArray || !p.Type.Numeric() {
			continue
		}
		if c.Sum {
			qs = append(qs, aggregate(e, p, "Sum", hql.AggSum))
		}
		if c.Avg {
			qs = append(qs, aggregate(e, p, "Avg", hql.AggAvg))
		}
		// Min and Max are recognized categories that currently emit no
		// templates.
	}
	if c.GroupBy {
		for _, p := range e.Properties {
			if p.IsArray || (p.Type != hql.TypeString && p.Type != hql.TypeBoolean) {
				continue
			}
			qs = append(qs, ast.Query{
				Name: "Group" + plural + "By" + PascalCase(p.Name),
				Stmts: []ast.Stmt{ast.Assign{Name: "groups", Value: ast.Traversal{
					Source:    hql.PrefixNode,
					TypeParam: name,
					Steps: []ast.Op{ast.Step{
						Name: hql.StepGroupBy,
						Args: []ast.Expr{ast.PropAccess{Name: p.Name}},
					}},
				}}},
				Return: ast.Param{Name: "groups"},
			})
		}
	}
	return qs
}

func aggregate(e Entity, p Property, prefix, agg string) ast.Query {
	name := PascalCase(e.Name)
	return ast.Query{
		Name: prefix + name + PascalCase(p.Name),
		Stmts: []ast.Stmt{ast.Assign{Name: "total", Value: ast.Traversal{
			Source:    hql.PrefixNode,
			TypeParam: name,
			Steps: []ast.Op{ast.Step{
				Name: agg,
				Args: []ast.Expr{ast.PropAccess{Name: p.Name}},
			}},
		}}},
		Return: ast.Param{Name: "total"},
	}
}

// --- Shared helpers ---

func idParam(name string) ast.QueryParam {
	return ast.QueryParam{Name: name, Type: hql.TypeID.String()}
}

// byID resolves a single element of the named type by id parameter.
func byID(prefix, typeName, param string) ast.Traversal {
	return ast.Traversal{
		Source:    prefix,
		TypeParam: typeName,
		Args:      []ast.Expr{ast.Param{Name: param}},
	}
}

func searchV(typeName string) ast.Traversal {
	return ast.Traversal{
		Source:    hql.StepSearchV,
		TypeParam: typeName,
		Args:      []ast.Expr{ast.Param{Name: "query"}, ast.Param{Name: "k"}},
	}
}

func rerankStep() ast.Step {
	return ast.Step{Name: hql.StepRerank, Args: []ast.Expr{
		ast.Param{Name: "query_text"},
		ast.Param{Name: "k"},
	}}
}

func prefilterStep(p Property) ast.Step {
	return ast.Step{Name: hql.StepPrefilter, Args: []ast.Expr{propEquals(p.Name, "val")}}
}

// propEquals builds the equality filter _::{name}::EQ(param).
func propEquals(prop, param string) ast.Expr {
	return ast.Chain{
		Base: ast.PropAccess{Name: prop},
		Ops:  []ast.Op{ast.Step{Name: hql.OpEQ, Args: []ast.Expr{ast.Param{Name: param}}}},
	}
}

func propParams(props []Property) []ast.QueryParam {
	params := make([]ast.QueryParam, 0, len(props))
	for _, p := range props {
		params = append(params, ast.QueryParam{Name: p.Name, Type: p.ParamType()})
	}
	return params
}

// propProjection assigns every property from the parameter of the same name.
func propProjection(props []Property) ast.Projection {
	fields := make([]ast.Field, 0, len(props))
	for _, p := range props {
		fields = append(fields, ast.Field{Name: p.Name, Value: ast.Param{Name: p.Name}})
	}
	return ast.Projection{Fields: fields}
}

func varName(e Entity) string {
	return SnakeCase(PascalCase(e.Name))
}

func hasTextProperty(e Entity) bool {
	for _, p := range e.Properties {
		if p.Type == hql.TypeString && !p.IsArray {
			return true
		}
	}
	return false
}

func filterableProps(e Entity) []Property {
	var props []Property
	for _, p := range e.Properties {
		if p.IsArray {
			continue
		}
		if p.IsIndex || p.IsUnique || p.Type == hql.TypeBoolean {
			props = append(props, p)
		}
	}
	return props
}

func firstNumericProp(e Entity) (Property, bool) {
	for _, p := range e.Properties {
		if !p.IsArray && p.Type.Numeric() {
			return p, true
		}
	}
	return Property{}, false
}
