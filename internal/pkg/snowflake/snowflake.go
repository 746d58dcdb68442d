// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz  | 5 Bit NodeID  |   12 Bit Sequence ID  |
// +---------------------------------------------------------------------------------------+

// Biz 单据类型, 占用 snowflake 节点号的高 5 位
type Biz uint

const (
	BizReturn Biz = iota
	BizAdjustment
)

const (
	maxNode uint = 31
	maxBiz  Biz  = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("单据类型超出限制")
	ErrUnknownBiz = errors.New("未知的单据类型")
)

type Generator interface {
	Generate(biz Biz) (ID, error)
}

type NodeGenerator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

// NewNodeGenerator 同一个 nodeID 只能有一个进程使用
func NewNodeGenerator(nodeID uint, bizs ...Biz) (*NodeGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: nodeID=%d", ErrExceedNode, nodeID)
	}
	g := &NodeGenerator{}
	for _, biz := range bizs {
		if biz > maxBiz {
			return nil, fmt.Errorf("%w: biz=%d", ErrExceedBiz, biz)
		}
		n, err := snowflake.NewNode(int64(uint(biz)<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(biz, n)
	}
	return g, nil
}

func (g *NodeGenerator) Generate(biz Biz) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: biz=%d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (id ID) Biz() Biz {
	return Biz(snowflake.ID(id).Node() >> 5)
}

func (id ID) Int64() int64 {
	return int64(id)
}

// SN 对外展示的单据号
func (id ID) SN(prefix string) string {
	return prefix + snowflake.ID(id).String()
}
