package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/digest"
	"github.com/weisyn/scriptkit/pkg/types"
)

// compressedKeySize 压缩公钥的序列化长度
const compressedKeySize = 33

// uncompressedKeySize 未压缩公钥的序列化长度
const uncompressedKeySize = 65

// parseKey 验证公钥是合法曲线点
func parseKey(pubKey []byte) error {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return fmt.Errorf("%w: invalid pub_key: %v", types.ErrInvalidStructure, err)
	}
	return nil
}

// P2PKH 返回公钥对应的p2pkh地址
// 按传入的序列化形态哈希，压缩与未压缩公钥产生不同地址
func (c *Codec) P2PKH(pubKey []byte, net types.NetworkParams) (string, error) {
	if len(pubKey) != compressedKeySize && len(pubKey) != uncompressedKeySize {
		return "", fmt.Errorf("%w: invalid pub_key length: %d", types.ErrInvalidStructure, len(pubKey))
	}
	if err := parseKey(pubKey); err != nil {
		return "", err
	}
	return c.FromHash160(net.P2PKHPrefix, digest.Hash160(pubKey), net)
}

// P2SH 返回赎回脚本对应的p2sh地址
func (c *Codec) P2SH(redeemScript []byte, net types.NetworkParams) (string, error) {
	return c.FromHash160(net.P2SHPrefix, digest.Hash160(redeemScript), net)
}

// P2WPKH 返回压缩公钥对应的p2wpkh地址
// 见证程序只定义在压缩公钥上，未压缩公钥拒绝
func (c *Codec) P2WPKH(pubKey []byte, net types.NetworkParams) (string, error) {
	if len(pubKey) != compressedKeySize {
		return "", fmt.Errorf("%w: invalid compressed pub_key length: %d", types.ErrInvalidStructure, len(pubKey))
	}
	if err := parseKey(pubKey); err != nil {
		return "", err
	}
	return c.FromWitness(0, digest.Hash160(pubKey), net)
}

// P2WSH 返回见证脚本对应的p2wsh地址
func (c *Codec) P2WSH(witnessScript []byte, net types.NetworkParams) (string, error) {
	return c.FromWitness(0, digest.SHA256(witnessScript), net)
}

// P2WPKHP2SH 返回压缩公钥对应的p2sh包裹p2wpkh地址
func (c *Codec) P2WPKHP2SH(pubKey []byte, net types.NetworkParams) (string, error) {
	if len(pubKey) != compressedKeySize {
		return "", fmt.Errorf("%w: invalid compressed pub_key length: %d", types.ErrInvalidStructure, len(pubKey))
	}
	if err := parseKey(pubKey); err != nil {
		return "", err
	}
	return c.FromV0WitnessProgram(digest.Hash160(pubKey), net)
}

// P2WSHP2SH 返回见证脚本对应的p2sh包裹p2wsh地址
func (c *Codec) P2WSHP2SH(witnessScript []byte, net types.NetworkParams) (string, error) {
	return c.FromV0WitnessProgram(digest.SHA256(witnessScript), net)
}
