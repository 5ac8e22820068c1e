// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrNoPrimaryKeywords indicates the primary keyword list is empty.
	ErrNoPrimaryKeywords = errors.New("primary keywords cannot be empty")

	// ErrInvalidWeights indicates the tier weights do not sum to 1.0.
	ErrInvalidWeights = errors.New("primary and secondary weights must sum to 1.0")

	// ErrInvalidMinSimilarity indicates a similarity threshold outside [0,1].
	ErrInvalidMinSimilarity = errors.New("min similarity must be in [0,1]")

	// ErrNegativeMaxResults indicates a negative result cap.
	ErrNegativeMaxResults = errors.New("max results cannot be negative")

	// ErrInvalidWindow indicates an unknown recency window name.
	ErrInvalidWindow = errors.New("invalid recency window")

	// ErrInvalidPost indicates a Post failed validation.
	ErrInvalidPost = errors.New("invalid post")

	// ErrMissingPostID indicates the post ID field is empty.
	ErrMissingPostID = errors.New("post id cannot be empty")

	// ErrMissingTitle indicates the post Title field is empty.
	ErrMissingTitle = errors.New("post title cannot be empty")

	// ErrMissingURL indicates the post URL field is empty.
	ErrMissingURL = errors.New("post url cannot be empty")

	// ErrMissingCreatedAt indicates the post has a zero creation timestamp.
	ErrMissingCreatedAt = errors.New("post creation time cannot be zero")
)
