// Package digest 提供脚本与地址层使用的哈希原语
// 薄封装，不持有状态，供编解码路径直接调用
package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// SHA256 计算数据的SHA256哈希
func SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// DoubleSHA256 计算数据的双重SHA256哈希
// 用于Base58Check校验和等场景
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 计算数据的SHA256+RIPEMD160复合哈希
// 用于公钥哈希和脚本哈希
func Hash160(data []byte) []byte {
	hash := sha256.Sum256(data)
	hasher := ripemd160.New()
	hasher.Write(hash[:])
	return hasher.Sum(nil)
}
