// seehuhn.de/go/raycast - ray collisions for graph paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raycast

import (
	"errors"
	"fmt"

	"seehuhn.de/go/raycast/graph"
)

var (
	// ErrMalformedGraph indicates that the graph violates the structure
	// the algorithm relies on.  Errors reporting a specific defect wrap
	// this error.
	ErrMalformedGraph = errors.New("raycast: malformed graph")

	// ErrDegenerateLine is returned for lines without a direction, for
	// example a [Ray] whose two points coincide.
	ErrDegenerateLine = errors.New("raycast: degenerate line")
)

// MissingPredecessorError is returned when a collision at the start of
// an edge is found, but no edge of the graph leads into that edge.
type MissingPredecessorError struct {
	Edge graph.EdgeRef
}

func (e *MissingPredecessorError) Error() string {
	return fmt.Sprintf("raycast: no edge leads into edge %s", e.Edge)
}

// Unwrap returns [ErrMalformedGraph].
func (e *MissingPredecessorError) Unwrap() error {
	return ErrMalformedGraph
}
