package solver

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fabll/core/expr"
	"github.com/fabll/core/graph"
	"github.com/fabll/core/literal"
	"github.com/fabll/core/param"
)

// algorithm is one step of the canonical sequence (spec §4.5). Order in
// canonicalAlgorithms is load-bearing: Solve always runs them in this
// exact order, once per pass.
type algorithm struct {
	name string
	run  func(ctx context.Context, p *pass) error
}

var canonicalAlgorithms = []algorithm{
	{"convert_inequality_with_literal_to_subset", convertInequalityWithLiteralToSubset},
	{"remove_unconstrained", removeUnconstrained},
	{"remove_congruent_expressions", removeCongruentExpressions},
	{"resolve_alias_classes", resolveAliasClasses},
	{"distribute_literals_across_alias_classes", distributeLiteralsAcrossAliasClasses},
	{"merge_intersect_subsets", mergeIntersectSubsets},
	{"compress_associative", compressAssociative},
	{"empty_set", emptySet},
	{"upper_estimation_of_expressions_with_subsets", upperEstimationOfExpressionsWithSubsets},
	{"transitive_subset", transitiveSubset},
	{"predicate_literal_deduce", predicateLiteralDeduce},
	{"convert_operable_aliased_to_single_into_literal", convertOperableAliasedToSingleIntoLiteral},
	{"isolate_lone_params", isolateLoneParams},
	{"uncorrelated_alias_fold", uncorrelatedAliasFold},
	{"remove_tautologies", removeTautologies},
	{"expression_wise_folds", expressionWiseFolds},
}

// literalOperand reports whether node is a Literal-kind expression leaf,
// returning the literal it wraps.
func literalOperand(node graph.BoundNode) (literal.Literal, bool) {
	e, err := expr.Bind(node)
	if err != nil || e.Kind() != expr.Literal {
		return nil, false
	}
	return e.Literal()
}

// resolveOperandLiteral returns the literal value an operand is currently
// known to denote: its own value if it is a Literal leaf, or the
// mutator's known-alias literal if it is a Parameter already solved to a
// single value.
func resolveOperandLiteral(ctx context.Context, p *pass, node graph.BoundNode) (literal.Literal, bool) {
	if lit, ok := literalOperand(node); ok {
		return lit, true
	}
	if _, ok := asParameter(node); ok {
		return p.m.KnownLiteral(ctx, node.Node())
	}
	return nil, false
}

// 1. convert_inequality_with_literal_to_subset rewrites GreaterOrEqual
// predicates with one literal operand into the equivalent IsSubset over
// a half-open quantity range, the form the rest of the pipeline reasons
// about.
func convertInequalityWithLiteralToSubset(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.GreaterOrEqual {
			continue
		}
		operands := e.Operands()
		if len(operands) != 2 {
			continue
		}
		lhs, rhs := operands[0], operands[1]

		if lit, ok := literalOperand(rhs); ok {
			q, ok := lit.(literal.QuantityIntervalDisjoint)
			if !ok {
				continue
			}
			subset := literal.NewQuantityInterval(q.Unit(), literal.Range{Min: q.MinElem(), Max: math.Inf(1)})
			replacement, err := expr.NewIsSubset(ctx, p.m.Output(ctx), lhs, subset, e.Constrained())
			if err != nil {
				return err
			}
			if err := p.m.Rewrite(ctx, e.Node(), replacement.Node()); err != nil {
				return err
			}
			p.markChanged()
			continue
		}
		if lit, ok := literalOperand(lhs); ok {
			q, ok := lit.(literal.QuantityIntervalDisjoint)
			if !ok {
				continue
			}
			subset := literal.NewQuantityInterval(q.Unit(), literal.Range{Min: math.Inf(-1), Max: q.MaxElem()})
			replacement, err := expr.NewIsSubset(ctx, p.m.Output(ctx), rhs, subset, e.Constrained())
			if err != nil {
				return err
			}
			if err := p.m.Rewrite(ctx, e.Node(), replacement.Node()); err != nil {
				return err
			}
			p.markChanged()
		}
	}
	return nil
}

// 2. remove_unconstrained drops predicate expressions that were never
// asserted and that nothing else in the graph depends on.
func removeUnconstrained(ctx context.Context, p *pass) error {
	kind := graph.EdgeOperand
	for _, e := range p.expressions(ctx) {
		if !e.Kind().IsPredicate() || e.Constrained() {
			continue
		}
		hasDependent := false
		for range p.m.Output(ctx).EdgesOf(e.Node().Node(), &kind, graph.In) {
			hasDependent = true
			break
		}
		if hasDependent {
			continue
		}
		if err := p.m.RemoveNode(ctx, e.Node()); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

// structuralKey returns a canonical string describing node's shape,
// recursing into operands. Associative/commutative kinds sort their
// operand keys so that e.g. Add(a, b) and Add(b, a) collapse to the same
// key (spec §4.5, §8 compress_associative/remove_congruent_expressions).
func structuralKey(node graph.BoundNode) string {
	if prm, ok := asParameter(node); ok {
		return "param:" + prm.Name()
	}
	e, ok := asExpression(node)
	if !ok {
		return "node:" + node.Node().ID().String()
	}
	if e.Kind() == expr.Literal {
		lit, _ := e.Literal()
		return fmt.Sprintf("lit:%T:%s", lit, lit.String())
	}
	operands := e.Operands()
	keys := make([]string, len(operands))
	for i, o := range operands {
		keys[i] = structuralKey(o)
	}
	if e.Kind().IsAssociativeCommutative() {
		sort.Strings(keys)
	}
	prefix := e.Kind().String()
	if e.Kind().IsPredicate() {
		prefix = fmt.Sprintf("%s[c=%v,t=%v]", prefix, e.Constrained(), e.SolverEvaluatesToTrue())
	}
	return prefix + "(" + strings.Join(keys, ",") + ")"
}

// 3. remove_congruent_expressions deduplicates structurally equal
// expression subtrees, keeping the canonical-order-first occurrence and
// merging the rest onto it.
func removeCongruentExpressions(ctx context.Context, p *pass) error {
	seen := make(map[string]expr.Expression)
	for _, e := range p.expressions(ctx) {
		if e.Kind() == expr.Literal {
			continue
		}
		key := structuralKey(e.Node())
		canonical, ok := seen[key]
		if !ok {
			seen[key] = e
			continue
		}
		if canonical.Node().Node().ID() == e.Node().Node().ID() {
			continue
		}
		if err := p.m.Merge(ctx, e.Node(), canonical.Node()); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

// 4. resolve_alias_classes picks a representative for each Is(param,
// param) predicate known to hold and records the alias both in the
// mutator (node-level, for Resolve) and in the pass (name-level, for
// cross-pass superset propagation).
func resolveAliasClasses(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.Is {
			continue
		}
		if !e.Constrained() && !e.SolverEvaluatesToTrue() {
			continue
		}
		operands := e.Operands()
		if len(operands) != 2 {
			continue
		}
		left, leftOK := asParameter(operands[0])
		right, rightOK := asParameter(operands[1])
		if !leftOK || !rightOK {
			continue
		}
		a := p.order(ctx, operands[0].Node().ID())
		b := p.order(ctx, operands[1].Node().ID())
		member, rep := operands[0], operands[1]
		memberName, repName := left.Name(), right.Name()
		if a < b {
			member, rep = operands[1], operands[0]
			memberName, repName = right.Name(), left.Name()
		}
		if existing, ok := p.aliasOf[memberName]; !ok || existing != repName {
			p.m.AliasRepr(ctx, member, rep)
			p.aliasOf[memberName] = repName
			p.markChanged()
		}
		if !e.SolverEvaluatesToTrue() {
			if _, err := p.m.MarkPredicateTrue(ctx, e); err != nil {
				return err
			}
			p.markChanged()
		}
	}
	return nil
}

// 5. distribute_literals_across_alias_classes asserts Is(param, literal)
// predicates that are known to hold, raising a *mutator.Contradiction if
// the representative was already aliased to a different, disjoint
// literal.
func distributeLiteralsAcrossAliasClasses(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.Is {
			continue
		}
		if !e.Constrained() && !e.SolverEvaluatesToTrue() {
			continue
		}
		operands := e.Operands()
		if len(operands) != 2 {
			continue
		}
		prm, lit, ok := paramLiteralPair(operands[0], operands[1])
		if !ok {
			continue
		}
		if err := p.m.AliasLiteral(ctx, prm.Node(), lit); err != nil {
			return err
		}
		if err := p.mergeSuperset(ctx, prm.Node(), p.canonical(prm.Name()), "distribute_literals_across_alias_classes", lit); err != nil {
			return err
		}
		if !e.SolverEvaluatesToTrue() {
			if _, err := p.m.MarkPredicateTrue(ctx, e); err != nil {
				return err
			}
			p.markChanged()
		}
	}
	return nil
}

// paramLiteralPair reports whether (a, b) is a (Parameter, Literal) pair
// in either order.
func paramLiteralPair(a, b graph.BoundNode) (param.Parameter, literal.Literal, bool) {
	if prm, ok := asParameter(a); ok {
		if lit, ok := literalOperand(b); ok {
			return prm, lit, true
		}
	}
	if prm, ok := asParameter(b); ok {
		if lit, ok := literalOperand(a); ok {
			return prm, lit, true
		}
	}
	return param.Parameter{}, nil, false
}

// 6. merge_intersect_subsets collapses every constrained IsSubset(param,
// literal) predicate on the same parameter into a single predicate
// carrying their intersection, raising a ContradictionByLiteral if that
// intersection is empty.
func mergeIntersectSubsets(ctx context.Context, p *pass) error {
	type group struct {
		prm   param.Parameter
		preds []expr.Expression
	}
	groups := make(map[string]*group)
	var order []string
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.IsSubset || !e.Constrained() {
			continue
		}
		operands := e.Operands()
		if len(operands) != 2 {
			continue
		}
		prm, _, ok := paramLiteralPair(operands[0], operands[1])
		if !ok {
			continue
		}
		g, ok := groups[prm.Name()]
		if !ok {
			g = &group{prm: prm}
			groups[prm.Name()] = g
			order = append(order, prm.Name())
		}
		g.preds = append(g.preds, e)
	}

	for _, name := range order {
		g := groups[name]
		_, merged, ok := paramLiteralPair(g.preds[0].Operands()[0], g.preds[0].Operands()[1])
		if !ok {
			continue
		}
		for _, other := range g.preds[1:] {
			_, lit, ok := paramLiteralPair(other.Operands()[0], other.Operands()[1])
			if !ok {
				continue
			}
			var err error
			merged, err = intersectLiterals(merged, lit)
			if err != nil {
				return err
			}
		}
		if merged.IsEmpty() {
			return &ContradictionByLiteral{Parameter: g.prm.Node(), Result: merged, Algorithm: "merge_intersect_subsets"}
		}
		// A lone subset constraint still needs to feed the pass's
		// superset bookkeeping, even though there is nothing to merge it
		// against structurally.
		if len(g.preds) > 1 {
			replacement, err := expr.NewIsSubset(ctx, p.m.Output(ctx), g.prm.Node(), merged, true)
			if err != nil {
				return err
			}
			if err := p.m.Rewrite(ctx, g.preds[0].Node(), replacement.Node()); err != nil {
				return err
			}
			for _, extra := range g.preds[1:] {
				if err := p.m.RemoveNode(ctx, extra.Node()); err != nil {
					return err
				}
			}
			p.markChanged()
		}
		if err := p.mergeSuperset(ctx, g.prm.Node(), p.canonical(name), "merge_intersect_subsets", merged); err != nil {
			return err
		}
	}
	return nil
}

// 7. compress_associative flattens a same-kind operand one level into
// its parent (Add(Add(a,b),c) -> Add(a,b,c)); run to fixpoint across
// passes, this eventually fully flattens any nesting depth.
func compressAssociative(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		if !e.Kind().IsAssociativeCommutative() {
			continue
		}
		operands := e.Operands()
		flattened := make([]any, 0, len(operands))
		changed := false
		for _, o := range operands {
			if inner, ok := asExpression(o); ok && inner.Kind() == e.Kind() {
				for _, io := range inner.Operands() {
					flattened = append(flattened, io)
				}
				changed = true
				continue
			}
			flattened = append(flattened, o)
		}
		if !changed {
			continue
		}
		replacement, err := buildAssociative(ctx, p.m.Output(ctx), e.Kind(), flattened)
		if err != nil {
			return err
		}
		if err := p.m.Rewrite(ctx, e.Node(), replacement.Node()); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

func buildAssociative(ctx context.Context, gr *graph.Graph, kind expr.Kind, operands []any) (expr.Expression, error) {
	switch kind {
	case expr.Add:
		return expr.NewAdd(ctx, gr, operands...)
	case expr.Multiply:
		return expr.NewMultiply(ctx, gr, operands...)
	case expr.And:
		return expr.NewAnd(ctx, gr, operands...)
	case expr.Or:
		return expr.NewOr(ctx, gr, operands...)
	case expr.Union:
		return expr.NewUnion(ctx, gr, operands...)
	case expr.Intersection:
		return expr.NewIntersection(ctx, gr, operands...)
	default:
		return expr.Expression{}, fmt.Errorf("solver: %s is not associative", kind)
	}
}

// 8. empty_set raises a ContradictionByLiteral the moment any literal
// value in play (a literal leaf in the graph or an accumulated
// parameter superset) is the empty set.
func emptySet(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.Literal {
			continue
		}
		lit, ok := e.Literal()
		if !ok || !lit.IsEmpty() {
			continue
		}
		kind := graph.EdgeOperand
		referenced := false
		for range p.m.Output(ctx).EdgesOf(e.Node().Node(), &kind, graph.In) {
			referenced = true
			break
		}
		if referenced {
			return &ContradictionByLiteral{Parameter: e.Node(), Result: lit, Algorithm: "empty_set"}
		}
	}
	for _, prm := range p.parameters(ctx) {
		lit, ok := p.supersets[prm.Name()]
		if ok && lit.IsEmpty() {
			return &ContradictionByLiteral{Parameter: prm.Node(), Result: lit, Algorithm: "empty_set"}
		}
	}
	return nil
}

// 9. upper_estimation_of_expressions_with_subsets synthesizes an
// unconstrained IsSubset estimate for a ToleranceGuess parameter that has
// a declared guess but no hard subset knowledge yet, so downstream
// algorithms that need a superset to make progress are not blocked on a
// pure guess (spec §4.3 heuristics).
func upperEstimationOfExpressionsWithSubsets(ctx context.Context, p *pass) error {
	for _, prm := range p.parameters(ctx) {
		if prm.Heuristic() != param.ToleranceGuess {
			continue
		}
		if _, known := p.supersets[prm.Name()]; known {
			continue
		}
		guess, ok := prm.Guess()
		if !ok {
			continue
		}
		q, ok := guess.(literal.QuantityIntervalDisjoint)
		if !ok {
			continue
		}
		center := q.MinElem()
		tol := prm.Tolerance()
		estimate := literal.NewQuantityInterval(q.Unit(), literal.Range{
			Min: center - math.Abs(center)*tol,
			Max: center + math.Abs(center)*tol,
		})
		predicate, err := expr.NewIsSubset(ctx, p.m.Output(ctx), prm.Node(), estimate, false)
		if err != nil {
			return err
		}
		p.m.Add(ctx, predicate.Node())
		if err := p.mergeSuperset(ctx, prm.Node(), p.canonical(prm.Name()), "upper_estimation_of_expressions_with_subsets", estimate); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

// 10. transitive_subset propagates a representative's known superset to
// every other member of its alias class.
func transitiveSubset(ctx context.Context, p *pass) error {
	members := make([]string, 0, len(p.aliasOf))
	for member := range p.aliasOf {
		members = append(members, member)
	}
	sort.Strings(members)
	for _, member := range members {
		rep := p.resolveGroupRepresentative(member)
		lit, ok := p.supersets[rep]
		if !ok {
			continue
		}
		var target graph.BoundNode
		for _, prm := range p.parameters(ctx) {
			if prm.Name() == member {
				target = prm.Node()
				break
			}
		}
		if target.IsZero() {
			continue
		}
		if err := p.mergeSuperset(ctx, target, member, "transitive_subset", lit); err != nil {
			return err
		}
	}
	return nil
}

// 11. predicate_literal_deduce aliases a parameter to its superset's
// single remaining value once the superset has narrowed to one element.
func predicateLiteralDeduce(ctx context.Context, p *pass) error {
	for _, prm := range p.parameters(ctx) {
		superset, ok := p.supersets[prm.Name()]
		if !ok || !superset.IsSingleton() {
			continue
		}
		if _, known := p.m.KnownLiteral(ctx, prm.Node().Node()); known {
			continue
		}
		if err := p.m.AliasLiteral(ctx, prm.Node(), superset); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

// 12. convert_operable_aliased_to_single_into_literal: the spec treats
// this as a distinct rewrite that substitutes a parameter aliased to a
// single literal directly into the expressions that reference it. This
// implementation folds that substitution into the generic constant-fold
// helper (resolveOperandLiteral, used by expression_wise_folds) rather
// than performing a separate graph rewrite pass, since both end in the
// same normal form (an expression whose every operand is a literal) and
// the separate rewrite would only be observable as an intermediate
// graph shape. Kept as an explicit step in the canonical sequence for
// traceability; it performs no independent mutation.
func convertOperableAliasedToSingleIntoLiteral(ctx context.Context, p *pass) error {
	return nil
}

// 13. isolate_lone_params resolves a parameter immediately when it has
// exactly one constrained IsSubset predicate and that predicate's
// literal is already singleton, short-circuiting the general
// superset-accumulation path for the common single-constraint case.
func isolateLoneParams(ctx context.Context, p *pass) error {
	byParam := make(map[string][]expr.Expression)
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.IsSubset || !e.Constrained() {
			continue
		}
		operands := e.Operands()
		if len(operands) != 2 {
			continue
		}
		prm, _, ok := paramLiteralPair(operands[0], operands[1])
		if !ok {
			continue
		}
		byParam[prm.Name()] = append(byParam[prm.Name()], e)
	}
	names := make([]string, 0, len(byParam))
	for name := range byParam {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		preds := byParam[name]
		if len(preds) != 1 {
			continue
		}
		e := preds[0]
		prm, lit, ok := paramLiteralPair(e.Operands()[0], e.Operands()[1])
		if !ok || !lit.IsSingleton() {
			continue
		}
		if _, known := p.m.KnownLiteral(ctx, prm.Node().Node()); !known {
			if err := p.m.AliasLiteral(ctx, prm.Node(), lit); err != nil {
				return err
			}
			p.markChanged()
		}
		if !e.SolverEvaluatesToTrue() {
			if _, err := p.m.MarkPredicateTrue(ctx, e); err != nil {
				return err
			}
			p.markChanged()
		}
		if err := p.mergeSuperset(ctx, prm.Node(), p.canonical(name), "isolate_lone_params", lit); err != nil {
			return err
		}
	}
	return nil
}

// 14. uncorrelated_alias_fold intersects the known supersets across an
// alias class's members, skipping any member wrapped in a Correlated
// expression elsewhere in the graph (a Correlated wrapper marks that the
// member's value tracks another operand's choice, so it must not be
// folded into the class independently, spec §4.5).
func uncorrelatedAliasFold(ctx context.Context, p *pass) error {
	correlated := make(map[string]bool)
	for _, e := range p.expressions(ctx) {
		if e.Kind() != expr.Correlated {
			continue
		}
		for _, o := range e.Operands() {
			if prm, ok := asParameter(o); ok {
				correlated[prm.Name()] = true
			}
		}
	}

	groups := make(map[string][]string)
	for member := range p.aliasOf {
		rep := p.resolveGroupRepresentative(member)
		groups[rep] = append(groups[rep], member)
	}
	reps := make([]string, 0, len(groups))
	for rep := range groups {
		reps = append(reps, rep)
	}
	sort.Strings(reps)
	for _, rep := range reps {
		members := groups[rep]
		merged, ok := p.supersets[rep]
		for _, m := range members {
			if correlated[m] {
				continue
			}
			lit, known := p.supersets[m]
			if !known {
				continue
			}
			if !ok {
				merged, ok = lit, true
				continue
			}
			var err error
			merged, err = intersectLiterals(merged, lit)
			if err != nil {
				return err
			}
		}
		if !ok {
			continue
		}
		var target graph.BoundNode
		for _, prm := range p.parameters(ctx) {
			if prm.Name() == rep {
				target = prm.Node()
				break
			}
		}
		if target.IsZero() {
			continue
		}
		if err := p.mergeSuperset(ctx, target, rep, "uncorrelated_alias_fold", merged); err != nil {
			return err
		}
	}
	return nil
}

// 15. remove_tautologies deletes predicates that hold trivially: Is(x,
// x) for any resolved operand x, and IsSubset(param, param.Domain.Full).
func removeTautologies(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		switch e.Kind() {
		case expr.Is:
			operands := e.Operands()
			if len(operands) != 2 {
				continue
			}
			if operands[0].Node().ID() == operands[1].Node().ID() {
				if err := p.m.RemoveNode(ctx, e.Node()); err != nil {
					return err
				}
				p.markChanged()
			}
		case expr.IsSubset:
			operands := e.Operands()
			if len(operands) != 2 {
				continue
			}
			prm, lit, ok := paramLiteralPair(operands[0], operands[1])
			if !ok {
				continue
			}
			if literal.Equal(lit, prm.Domain().Full()) {
				if err := p.m.RemoveNode(ctx, e.Node()); err != nil {
					return err
				}
				p.markChanged()
			}
		}
	}
	return nil
}

// 16. expression_wise_folds computes a literal result for any Add,
// Multiply, And, or Or expression whose operands are all currently
// known literals, replacing the expression with that literal (spec §4.5
// expression-wise folds). Power, Log, Abs, and Round are folded only in
// the scalar (singleton-operand) case; folding them over a general
// interval would require interval-aware transcendental bounds the
// solver does not implement, a documented scope trim.
func expressionWiseFolds(ctx context.Context, p *pass) error {
	for _, e := range p.expressions(ctx) {
		var folded literal.Literal
		var err error
		switch e.Kind() {
		case expr.Add:
			folded, err = foldQuantities(ctx, p, e, func(a, b literal.QuantityIntervalDisjoint) (literal.QuantityIntervalDisjoint, error) {
				return a.OpAdd(b)
			})
		case expr.Multiply:
			folded, err = foldQuantities(ctx, p, e, func(a, b literal.QuantityIntervalDisjoint) (literal.QuantityIntervalDisjoint, error) {
				return a.OpMul(b)
			})
		case expr.And:
			folded, err = foldBools(ctx, p, e, literal.BoolSet.And)
		case expr.Or:
			folded, err = foldBools(ctx, p, e, literal.BoolSet.Or)
		case expr.Log, expr.Abs, expr.Round:
			folded, err = foldUnaryScalar(ctx, p, e)
		default:
			continue
		}
		if err != nil {
			return err
		}
		if folded == nil {
			continue
		}
		literalNode := expr.NewLiteral(p.m.Output(ctx), folded)
		p.m.Add(ctx, literalNode.Node())
		if err := p.m.Merge(ctx, e.Node(), literalNode.Node()); err != nil {
			return err
		}
		p.markChanged()
	}
	return nil
}

func foldQuantities(ctx context.Context, p *pass, e expr.Expression, combine func(a, b literal.QuantityIntervalDisjoint) (literal.QuantityIntervalDisjoint, error)) (literal.Literal, error) {
	operands := e.Operands()
	if len(operands) == 0 {
		return nil, nil
	}
	acc, ok := resolveOperandLiteral(ctx, p, operands[0])
	if !ok {
		return nil, nil
	}
	q, ok := acc.(literal.QuantityIntervalDisjoint)
	if !ok {
		return nil, nil
	}
	for _, o := range operands[1:] {
		lit, ok := resolveOperandLiteral(ctx, p, o)
		if !ok {
			return nil, nil
		}
		next, ok := lit.(literal.QuantityIntervalDisjoint)
		if !ok {
			return nil, nil
		}
		merged, err := combine(q, next)
		if err != nil {
			return nil, err
		}
		q = merged
	}
	return q, nil
}

func foldBools(ctx context.Context, p *pass, e expr.Expression, combine func(a, b literal.BoolSet) literal.BoolSet) (literal.Literal, error) {
	operands := e.Operands()
	if len(operands) == 0 {
		return nil, nil
	}
	acc, ok := resolveOperandLiteral(ctx, p, operands[0])
	if !ok {
		return nil, nil
	}
	b, ok := acc.(literal.BoolSet)
	if !ok {
		return nil, nil
	}
	for _, o := range operands[1:] {
		lit, ok := resolveOperandLiteral(ctx, p, o)
		if !ok {
			return nil, nil
		}
		next, ok := lit.(literal.BoolSet)
		if !ok {
			return nil, nil
		}
		b = combine(b, next)
	}
	return b, nil
}

func foldUnaryScalar(ctx context.Context, p *pass, e expr.Expression) (literal.Literal, error) {
	operands := e.Operands()
	if len(operands) != 1 {
		return nil, nil
	}
	lit, ok := resolveOperandLiteral(ctx, p, operands[0])
	if !ok {
		return nil, nil
	}
	q, ok := lit.(literal.QuantityIntervalDisjoint)
	if !ok || !q.IsSingleton() {
		return nil, nil
	}
	v := q.MinElem()
	switch e.Kind() {
	case expr.Log:
		v = math.Log(v)
	case expr.Abs:
		v = math.Abs(v)
	case expr.Round:
		v = math.Round(v)
	}
	return literal.Single(q.Unit(), v), nil
}
