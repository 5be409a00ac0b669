package template

import (
	"fmt"

	"github.com/weisyn/scriptkit/pkg/types"
)

// Assert 断言脚本满足指定模板的全部结构规则
//
// 与Classify不同，失败时返回指明违反规则的类型化错误。
// unknown没有结构规则可断言，与未定义类型一并拒绝。
func Assert(scriptType types.ScriptType, script []byte) error {
	switch scriptType {
	case types.ScriptTypeP2PK:
		return AssertP2PK(script)
	case types.ScriptTypeP2PKH:
		return AssertP2PKH(script)
	case types.ScriptTypeP2SH:
		return AssertP2SH(script)
	case types.ScriptTypeP2WPKH:
		return AssertP2WPKH(script)
	case types.ScriptTypeP2WSH:
		return AssertP2WSH(script)
	case types.ScriptTypeP2MS:
		return AssertP2MS(script)
	case types.ScriptTypeNullData:
		return AssertNullData(script)
	default:
		return fmt.Errorf("%w: unknown scriptPubKey type: %s", types.ErrUnsupportedFeature, scriptType)
	}
}

// AssertP2PK 断言公钥直付形状
func AssertP2PK(script []byte) error {
	if len(script) != 35 && len(script) != 67 {
		return fmt.Errorf("%w: invalid p2pk script_pub_key length: %d", types.ErrInvalidStructure, len(script))
	}
	if script[len(script)-1] != byte(types.OP_CHECKSIG) {
		return fmt.Errorf("%w: missing final OP_CHECKSIG", types.ErrInvalidStructure)
	}
	marker := byte(compressedKeyMarker)
	if len(script) == 67 {
		marker = uncompressedKeyMarker
	}
	if script[0] != marker {
		return fmt.Errorf("%w: invalid pub_key length marker: 0x%02x", types.ErrInvalidStructure, script[0])
	}
	return nil
}

// AssertP2PKH 断言公钥哈希形状
func AssertP2PKH(script []byte) error {
	if len(script) != 25 {
		return fmt.Errorf("%w: invalid p2pkh script_pub_key length: %d", types.ErrInvalidStructure, len(script))
	}
	if script[0] != byte(types.OP_DUP) || script[1] != byte(types.OP_HASH160) {
		return fmt.Errorf("%w: missing leading OP_DUP, OP_HASH160", types.ErrInvalidStructure)
	}
	if script[2] != hash160Marker {
		return fmt.Errorf("%w: invalid pub_key hash length marker: 0x%02x", types.ErrInvalidStructure, script[2])
	}
	if script[23] != byte(types.OP_EQUALVERIFY) || script[24] != byte(types.OP_CHECKSIG) {
		return fmt.Errorf("%w: missing final OP_EQUALVERIFY, OP_CHECKSIG", types.ErrInvalidStructure)
	}
	return nil
}

// AssertP2SH 断言脚本哈希形状
func AssertP2SH(script []byte) error {
	if len(script) != 23 {
		return fmt.Errorf("%w: invalid p2sh script_pub_key length: %d", types.ErrInvalidStructure, len(script))
	}
	if script[0] != byte(types.OP_HASH160) {
		return fmt.Errorf("%w: missing leading OP_HASH160", types.ErrInvalidStructure)
	}
	if script[1] != hash160Marker {
		return fmt.Errorf("%w: invalid redeem script hash length marker: 0x%02x", types.ErrInvalidStructure, script[1])
	}
	if script[22] != byte(types.OP_EQUAL) {
		return fmt.Errorf("%w: missing final OP_EQUAL", types.ErrInvalidStructure)
	}
	return nil
}

// AssertP2WPKH 断言见证公钥哈希形状
func AssertP2WPKH(script []byte) error {
	if len(script) != 22 {
		return fmt.Errorf("%w: invalid p2wpkh script_pub_key length: %d", types.ErrInvalidStructure, len(script))
	}
	if script[0] != byte(types.OP_0) {
		return fmt.Errorf("%w: invalid witness version: 0x%02x", types.ErrInvalidStructure, script[0])
	}
	if script[1] != hash160Marker {
		return fmt.Errorf("%w: invalid pub_key hash length marker: 0x%02x", types.ErrInvalidStructure, script[1])
	}
	return nil
}

// AssertP2WSH 断言见证脚本哈希形状
func AssertP2WSH(script []byte) error {
	if len(script) != 34 {
		return fmt.Errorf("%w: invalid p2wsh script_pub_key length: %d", types.ErrInvalidStructure, len(script))
	}
	if script[0] != byte(types.OP_0) {
		return fmt.Errorf("%w: invalid witness version: 0x%02x", types.ErrInvalidStructure, script[0])
	}
	if script[1] != sha256Marker {
		return fmt.Errorf("%w: invalid redeem script hash length marker: 0x%02x", types.ErrInvalidStructure, script[1])
	}
	return nil
}

// AssertP2MS 断言裸多签形状
func AssertP2MS(script []byte) error {
	if len(script) < 37 {
		return fmt.Errorf("%w: invalid p2ms script_pub_key size: %d", types.ErrInvalidStructure, len(script))
	}
	if script[len(script)-1] != byte(types.OP_CHECKMULTISIG) {
		return fmt.Errorf("%w: missing final OP_CHECKMULTISIG", types.ErrInvalidStructure)
	}

	m, ok := smallIntAt(script[0])
	if !ok {
		return fmt.Errorf("%w: invalid m in m-of-n: 0x%02x", types.ErrInvalidStructure, script[0])
	}
	n, ok := smallIntAt(script[len(script)-2])
	if !ok {
		return fmt.Errorf("%w: invalid n in m-of-n: 0x%02x", types.ErrInvalidStructure, script[len(script)-2])
	}
	if m > n {
		return fmt.Errorf("%w: invalid m in m-of-n: %d > %d", types.ErrInvalidStructure, m, n)
	}

	// 先按标记值走完游标：游标未精确落在OP_n上或推送数量不等于n
	// 属于尺寸错误，标记本身越界属于公钥错误
	var markers []byte
	i := 1
	for i < len(script)-2 {
		markers = append(markers, script[i])
		i += 1 + int(script[i])
	}
	if i != len(script)-2 || len(markers) != n {
		return fmt.Errorf("%w: invalid p2ms script_pub_key size: %d", types.ErrInvalidStructure, len(script))
	}
	for _, marker := range markers {
		if marker != 33 && marker != 65 {
			return fmt.Errorf("%w: invalid key in p2ms: length marker 0x%02x", types.ErrInvalidStructure, marker)
		}
	}
	return nil
}

// AssertNullData 断言数据承载形状
func AssertNullData(script []byte) error {
	if len(script) == 0 || script[0] != byte(types.OP_RETURN) {
		return fmt.Errorf("%w: missing leading OP_RETURN", types.ErrInvalidStructure)
	}
	size := len(script)
	if size < 2 || size > 83 {
		return fmt.Errorf("%w: invalid nulldata script length: %d", types.ErrInvalidStructure, size)
	}
	if size <= 77 {
		if int(script[1]) != size-2 {
			return fmt.Errorf("%w: invalid data length marker: 0x%02x", types.ErrInvalidStructure, script[1])
		}
		return nil
	}
	if script[1] != byte(types.OP_PUSHDATA1) || int(script[2]) != size-3 {
		return fmt.Errorf("%w: invalid data length marker: 0x%02x", types.ErrInvalidStructure, script[1])
	}
	return nil
}
