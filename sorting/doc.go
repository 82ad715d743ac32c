// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

/*
Package sorting implements ordering of slices by projected keys.

# Overview

The core of the package is an in-place partition-exchange sort that
operates on an inclusive index range of a slice. Elements are ordered
by a key computed with a caller-supplied selector; keys are compared
either by their natural order (Sort, By, ThenBy, ...) or by an explicit
three-way comparison (SortFunc, ByFunc, ThenByFunc, ...). The direction
of a sort is decided inside the partitioning comparisons, so descending
output is produced directly rather than by reversing an ascending
result.

Multi-key ordering is built structurally on top of this single-key
engine rather than on sort stability: By establishes the primary order
over a fresh copy of the source, and each ThenBy stage locates the
maximal runs of elements whose previous-stage keys compare equal and
resorts every such run in confinement. A later stage only ever
subdivides the runs left by the previous stage; it never reorders
elements across a run boundary.

Run boundaries are detected with the previous stage's key selector and
comparator. Whole-element equality plays no part in run detection: two
distinct elements sharing a key belong to the same run and stay
eligible for reordering by later keys.

# Limitations

Every operation is synchronous and materializes its result eagerly.
Inputs must fit in memory. The base sort is not stable; ordering
guarantees beyond the composed keys are not provided.
*/
package sorting
