package model

import (
	"encoding/json"
	"fmt"

	"model-serving-service/internal/core/domain"
)

// treeNode is one node of a serialized decision tree. Internal nodes
// carry a feature index and split threshold plus child indices; leaves
// carry Feature == -1 and a class probability distribution.
type treeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Dist      []float64 `json:"dist,omitempty"`
}

func (n *treeNode) isLeaf() bool { return n.Feature < 0 }

type decisionTree struct {
	Nodes []treeNode `json:"nodes"`
}

type forestState struct {
	NumFeatures int            `json:"num_features"`
	NumClasses  int            `json:"num_classes"`
	Trees       []decisionTree `json:"trees"`
}

// RandomForest averages the leaf class distributions of an ensemble of
// decision trees. Immutable after decode.
type RandomForest struct {
	numFeatures int
	numClasses  int
	trees       []decisionTree
}

func decodeRandomForest(data []byte) (*RandomForest, error) {
	var state forestState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
	}
	if state.NumFeatures <= 0 || state.NumClasses <= 0 {
		return nil, fmt.Errorf("%w: non-positive feature or class count", domain.ErrDeserialization)
	}
	if len(state.Trees) == 0 {
		return nil, fmt.Errorf("%w: forest has no trees", domain.ErrDeserialization)
	}
	for ti, tree := range state.Trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("%w: tree %d has no nodes", domain.ErrDeserialization, ti)
		}
		for ni, node := range tree.Nodes {
			if node.isLeaf() {
				if len(node.Dist) != state.NumClasses {
					return nil, fmt.Errorf("%w: tree %d node %d distribution has %d entries, want %d",
						domain.ErrDeserialization, ti, ni, len(node.Dist), state.NumClasses)
				}
				continue
			}
			if node.Feature >= state.NumFeatures {
				return nil, fmt.Errorf("%w: tree %d node %d splits on feature %d of %d",
					domain.ErrDeserialization, ti, ni, node.Feature, state.NumFeatures)
			}
			if node.Left <= ni || node.Left >= len(tree.Nodes) ||
				node.Right <= ni || node.Right >= len(tree.Nodes) {
				return nil, fmt.Errorf("%w: tree %d node %d has out-of-range children",
					domain.ErrDeserialization, ti, ni)
			}
		}
	}
	return &RandomForest{
		numFeatures: state.NumFeatures,
		numClasses:  state.NumClasses,
		trees:       state.Trees,
	}, nil
}

func (f *RandomForest) NumFeatures() int { return f.numFeatures }
func (f *RandomForest) NumClasses() int  { return f.numClasses }

// Predict walks every tree to a leaf and averages the leaf class
// distributions. Child indices are validated at decode time, so the
// walk always terminates.
func (f *RandomForest) Predict(features []float64) (int, []float64, error) {
	if len(features) != f.numFeatures {
		return 0, nil, fmt.Errorf("predictor expects %d features, got %d", f.numFeatures, len(features))
	}

	probs := make([]float64, f.numClasses)
	for _, tree := range f.trees {
		node := &tree.Nodes[0]
		for !node.isLeaf() {
			if features[node.Feature] <= node.Threshold {
				node = &tree.Nodes[node.Left]
			} else {
				node = &tree.Nodes[node.Right]
			}
		}
		for i, p := range node.Dist {
			probs[i] += p
		}
	}

	n := float64(len(f.trees))
	for i := range probs {
		probs[i] /= n
	}

	return argmax(probs), probs, nil
}
