// SPDX-License-Identifier: MIT

package weilrep

import "github.com/katalvlaran/heegner/matrix"

// RelationDimension returns the dimension of the space of linear relations
// among the given coefficient vectors, i.e. len(vectors) - rank.
func RelationDimension(vectors []matrix.Vec) (int, error) {
	rk, err := matrix.Rank(vectors)
	if err != nil {
		return 0, err
	}

	return len(vectors) - rk, nil
}
