// SPDX-License-Identifier: MIT

package builder

// Method names used to prefix errors with the constructor name.
const (
	MethodCircle  = "Circle"
	MethodUniform = "Uniform"
	MethodCluster = "Cluster"
	MethodPoints  = "Points"
)

// Minimum point counts.
const (
	// MinCirclePoints is the smallest Circle/Polygon that encloses a loop.
	MinCirclePoints = 3
	// MinSamplePoints is the smallest stochastic sample.
	MinSamplePoints = 1
)

// planeDim is the dimension of Circle/Polygon centers.
const planeDim = 2

// HexagonSides is the vertex count of Hexagon.
const HexagonSides = 6
