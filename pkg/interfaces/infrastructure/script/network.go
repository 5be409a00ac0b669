// Package script 提供网络参数注册表接口定义
//
// 📍 **网络参数注册表 (Network Parameter Registry)**
//
// 本文件定义了网络参数的注册与反向解析接口，专注于：
// - 参数登记：每条链的版本字节与HRP集合
// - 反向解析：从版本字节或HRP定位网络
// - 唯一性：注册表内版本字节与HRP互不冲突
//
// 🔗 **组件关系**
// - NetworkRegistry：被地址翻译器用于前缀合法性判定
// - 与 AddressCodec：解码路径的网络归属判定依赖本接口
package script

import "github.com/weisyn/scriptkit/pkg/types"

// NetworkRegistry 定义网络参数注册表接口
//
// 注册表构造后只读，可被并发读取。所有查询未命中时返回 ok=false，
// 由调用方决定包装何种错误。
type NetworkRegistry interface {
	// ByName 按网络名称查找参数
	ByName(name string) (*types.NetworkParams, bool)

	// FromP2PKHPrefix 按公钥哈希版本字节反向解析网络
	FromP2PKHPrefix(prefix byte) (*types.NetworkParams, bool)

	// FromP2SHPrefix 按脚本哈希版本字节反向解析网络
	FromP2SHPrefix(prefix byte) (*types.NetworkParams, bool)

	// FromWIFPrefix 按WIF版本字节反向解析网络
	FromWIFPrefix(prefix byte) (*types.NetworkParams, bool)

	// FromHRP 按Bech32人类可读前缀反向解析网络
	FromHRP(hrp string) (*types.NetworkParams, bool)

	// Networks 返回注册顺序的全部网络参数
	Networks() []types.NetworkParams
}
