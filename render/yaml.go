package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coinweigh/coins"
	"github.com/katalvlaran/coinweigh/sequential"
	"github.com/katalvlaran/coinweigh/ternary"
)

// SequentialDocument is the YAML form of an adaptive strategy.
type SequentialDocument struct {
	Mode      string    `yaml:"mode"`
	Coins     int       `yaml:"coins"`
	Weighings int       `yaml:"weighings"`
	Tree      *TreeNode `yaml:"tree"`
}

// TreeNode is either a weighing (Left, Right, Sizes and three branches)
// or a leaf carrying only Result.
type TreeNode struct {
	Result   string    `yaml:"result,omitempty"`
	Left     []int     `yaml:"left,flow,omitempty"`
	Right    []int     `yaml:"right,flow,omitempty"`
	Sizes    []int     `yaml:"sizes,flow,omitempty"`
	Heavy    *TreeNode `yaml:"heavy,omitempty"`
	Balanced *TreeNode `yaml:"balanced,omitempty"`
	Light    *TreeNode `yaml:"light,omitempty"`
}

// StaticDocument is the YAML form of a static strategy.
type StaticDocument struct {
	Mode      string      `yaml:"mode"`
	Coins     int         `yaml:"coins"`
	Weighings int         `yaml:"weighings"`
	Codes     []CoinCode  `yaml:"codes"`
	Rounds    []RoundPans `yaml:"rounds"`
}

// CoinCode lists the outcome digits that identify one coin, first round
// first.
type CoinCode struct {
	Coin  int    `yaml:"coin"`
	Heavy string `yaml:"heavy"`
	Light string `yaml:"light"`
}

// RoundPans is one static weighing.
type RoundPans struct {
	Left  []int `yaml:"left,flow"`
	Right []int `yaml:"right,flow"`
}

// NewSequentialDocument converts res.
func NewSequentialDocument(res sequential.Result) SequentialDocument {
	return SequentialDocument{
		Mode:      "sequential",
		Coins:     res.Coins,
		Weighings: res.Depth,
		Tree:      treeNode(res.Root),
	}
}

func treeNode(n *sequential.Node) *TreeNode {
	if n == nil {
		return nil
	}
	if n.Leaf() {
		return &TreeNode{Result: n.Label()}
	}
	return &TreeNode{
		Left:     n.Pans.Left,
		Right:    n.Pans.Right,
		Sizes:    n.Sizes[:],
		Heavy:    treeNode(n.Children[coins.LeftHeavy]),
		Balanced: treeNode(n.Children[coins.Balanced]),
		Light:    treeNode(n.Children[coins.RightHeavy]),
	}
}

// NewStaticDocument converts tbl.
func NewStaticDocument(tbl ternary.Table) (StaticDocument, error) {
	rounds, err := tbl.Schedule()
	if err != nil {
		return StaticDocument{}, err
	}

	doc := StaticDocument{
		Mode:      "static",
		Coins:     tbl.Coins,
		Weighings: tbl.Weighings,
		Codes:     make([]CoinCode, tbl.Coins),
		Rounds:    make([]RoundPans, len(rounds)),
	}
	for i, code := range tbl.Codes {
		doc.Codes[i] = CoinCode{
			Coin:  i + 1,
			Heavy: digitString(code, tbl.Weighings),
			Light: digitString(ternary.Complement(code), tbl.Weighings),
		}
	}
	for i, r := range rounds {
		doc.Rounds[i] = RoundPans{Left: r.Left, Right: r.Right}
	}

	return doc, nil
}

func digitString(code, k int) string {
	var b strings.Builder
	for _, d := range ternary.Digits(code, k) {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// YAML encodes doc to w with two-space indentation.
func YAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
