// Package netparams 提供网络参数注册表
//
// 注册表在构造时强制执行唯一性约束：同类版本字节、HRP、网络名称
// 在表内互不冲突。构造完成后只读，可被并发读取。
package netparams

import (
	"fmt"
	"strings"

	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// 内置网络参数
var (
	// MainNet 主网参数
	MainNet = types.NetworkParams{
		Name:        "mainnet",
		P2PKHPrefix: 0x00,
		P2SHPrefix:  0x05,
		WIFPrefix:   0x80,
		Bech32HRP:   "bc",
	}

	// TestNet 测试网参数
	TestNet = types.NetworkParams{
		Name:        "testnet",
		P2PKHPrefix: 0x6f,
		P2SHPrefix:  0xc4,
		WIFPrefix:   0xef,
		Bech32HRP:   "tb",
	}

	// RegTest 回归测试网参数
	// 与testnet共享Base58版本字节，因此不能与testnet共存于
	// 同一注册表；需要regtest的调用方自行构造注册表
	RegTest = types.NetworkParams{
		Name:        "regtest",
		P2PKHPrefix: 0x6f,
		P2SHPrefix:  0xc4,
		WIFPrefix:   0xef,
		Bech32HRP:   "bcrt",
	}
)

// Registry 网络参数注册表
// 构造后不可变，查询方法可被并发调用
type Registry struct {
	networks []types.NetworkParams
	byName   map[string]*types.NetworkParams
	byP2PKH  map[byte]*types.NetworkParams
	byP2SH   map[byte]*types.NetworkParams
	byWIF    map[byte]*types.NetworkParams
	byHRP    map[string]*types.NetworkParams
}

// 接口实现声明
var _ scriptintf.NetworkRegistry = (*Registry)(nil)

// New 构造注册表
// 任一网络参数不完整或与已注册网络冲突时返回结构无效错误
func New(networks ...types.NetworkParams) (*Registry, error) {
	if len(networks) == 0 {
		return nil, fmt.Errorf("%w: empty network list", types.ErrInvalidStructure)
	}

	r := &Registry{
		networks: append([]types.NetworkParams(nil), networks...),
		byName:   make(map[string]*types.NetworkParams, len(networks)),
		byP2PKH:  make(map[byte]*types.NetworkParams, len(networks)),
		byP2SH:   make(map[byte]*types.NetworkParams, len(networks)),
		byWIF:    make(map[byte]*types.NetworkParams, len(networks)),
		byHRP:    make(map[string]*types.NetworkParams, len(networks)),
	}

	for i := range r.networks {
		net := &r.networks[i]
		if !net.IsValid() {
			return nil, fmt.Errorf("%w: incomplete network params: %q", types.ErrInvalidStructure, net.Name)
		}

		name := strings.ToLower(net.Name)
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: duplicate network name: %s", types.ErrInvalidStructure, net.Name)
		}
		if _, exists := r.byP2PKH[net.P2PKHPrefix]; exists {
			return nil, fmt.Errorf("%w: duplicate p2pkh prefix: 0x%02x", types.ErrInvalidStructure, net.P2PKHPrefix)
		}
		if _, exists := r.byP2SH[net.P2SHPrefix]; exists {
			return nil, fmt.Errorf("%w: duplicate p2sh prefix: 0x%02x", types.ErrInvalidStructure, net.P2SHPrefix)
		}
		if _, exists := r.byWIF[net.WIFPrefix]; exists {
			return nil, fmt.Errorf("%w: duplicate wif prefix: 0x%02x", types.ErrInvalidStructure, net.WIFPrefix)
		}
		hrp := strings.ToLower(net.Bech32HRP)
		if _, exists := r.byHRP[hrp]; exists {
			return nil, fmt.Errorf("%w: duplicate bech32 hrp: %s", types.ErrInvalidStructure, net.Bech32HRP)
		}

		r.byName[name] = net
		r.byP2PKH[net.P2PKHPrefix] = net
		r.byP2SH[net.P2SHPrefix] = net
		r.byWIF[net.WIFPrefix] = net
		r.byHRP[hrp] = net
	}

	return r, nil
}

// MustNew 构造注册表，参数冲突时panic
// 仅用于已知良好的内置参数集
func MustNew(networks ...types.NetworkParams) *Registry {
	r, err := New(networks...)
	if err != nil {
		panic(err)
	}
	return r
}

// 内置注册表：mainnet + testnet
// regtest因前缀冲突不在其中，见RegTest的说明
var defaultRegistry = MustNew(MainNet, TestNet)

// Default 返回内置的 mainnet + testnet 注册表
func Default() *Registry {
	return defaultRegistry
}

// ByName 按网络名称查找参数
func (r *Registry) ByName(name string) (*types.NetworkParams, bool) {
	net, ok := r.byName[strings.ToLower(name)]
	return net, ok
}

// FromP2PKHPrefix 按公钥哈希版本字节反向解析网络
func (r *Registry) FromP2PKHPrefix(prefix byte) (*types.NetworkParams, bool) {
	net, ok := r.byP2PKH[prefix]
	return net, ok
}

// FromP2SHPrefix 按脚本哈希版本字节反向解析网络
func (r *Registry) FromP2SHPrefix(prefix byte) (*types.NetworkParams, bool) {
	net, ok := r.byP2SH[prefix]
	return net, ok
}

// FromWIFPrefix 按WIF版本字节反向解析网络
func (r *Registry) FromWIFPrefix(prefix byte) (*types.NetworkParams, bool) {
	net, ok := r.byWIF[prefix]
	return net, ok
}

// FromHRP 按Bech32人类可读前缀反向解析网络
func (r *Registry) FromHRP(hrp string) (*types.NetworkParams, bool) {
	net, ok := r.byHRP[strings.ToLower(hrp)]
	return net, ok
}

// Networks 返回注册顺序的全部网络参数副本
func (r *Registry) Networks() []types.NetworkParams {
	return append([]types.NetworkParams(nil), r.networks...)
}
