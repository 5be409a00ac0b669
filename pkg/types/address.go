package types

// DecodedAddress 传统 Base58Check 地址的解码结果
type DecodedAddress struct {
	// Prefix 地址版本字节
	Prefix byte
	// Hash160 20字节的公钥哈希或脚本哈希
	Hash160 []byte
	// Network 版本字节反向解析出的网络
	Network *NetworkParams
	// IsScriptHash 版本字节是否为脚本哈希前缀
	IsScriptHash bool
}

// WitnessProgram 隔离见证地址的解码结果
type WitnessProgram struct {
	// Version 见证版本（0..16）
	Version int
	// Program 见证程序（2..40字节）
	Program []byte
	// Network HRP 反向解析出的网络
	Network *NetworkParams
	// IsScriptHash 是否为脚本哈希承诺（版本0且程序为32字节）
	IsScriptHash bool
}

// PrivateKeyInfo WIF 私钥的解码结果
type PrivateKeyInfo struct {
	// Key 32字节大端私钥标量，取值范围 [1, n-1]
	Key [32]byte
	// Network WIF 版本字节反向解析出的网络
	Network *NetworkParams
	// Compressed 对应公钥是否使用压缩编码
	Compressed bool
}
