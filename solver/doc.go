// Package solver provides an exact solver for the paint shop problem.
//
// Definition
//
// A paint shop problem deals with n colors, each of which must be produced
// in exactly one finish: glossy, which is cheap, or matte, which is expensive.
// Each customer of the shop lists (color, finish) pairs they would accept,
// and is happy as soon as at least one of them holds in the production plan.
// Solving the problem means finding the plan with as few matte colors as
// possible that makes every customer happy, or proving that no plan at all
// can.
//
// The solver is a deliberate brute force: it materializes the whole 2^n
// search space, orders it by ascending number of matte colors, and returns
// the first satisfying assignment it meets. There is no backtracking, no
// pruning and no propagation, so the answer is guaranteed optimal, but the
// running time and memory grow exponentially with the number of colors.
package solver
