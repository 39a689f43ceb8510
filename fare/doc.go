// Package fare implements the tiered jeepney fare matrix: a flat base fare
// up to a configured distance, a per-kilometer rate beyond it (partial
// kilometers billed as full), and a flat percentage reduction for discounted
// rider classes.
package fare
