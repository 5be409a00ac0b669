package types

import "strings"

// NetworkParams 网络参数记录
// 描述一条链的地址与私钥序列化参数，构造后不可变
type NetworkParams struct {
	// Name 网络名称（如 mainnet、testnet）
	Name string
	// P2PKHPrefix 公钥哈希地址的 Base58Check 版本字节
	P2PKHPrefix byte
	// P2SHPrefix 脚本哈希地址的 Base58Check 版本字节
	P2SHPrefix byte
	// WIFPrefix WIF 私钥编码的版本字节
	WIFPrefix byte
	// Bech32HRP 隔离见证地址的人类可读前缀
	Bech32HRP string
}

// String 返回网络名称
func (n NetworkParams) String() string {
	return n.Name
}

// IsValid 检查网络参数是否完整
func (n NetworkParams) IsValid() bool {
	return strings.TrimSpace(n.Name) != "" && strings.TrimSpace(n.Bech32HRP) != ""
}
