package template

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/codec"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/digest"
	"github.com/weisyn/scriptkit/pkg/types"
)

// PayToPubKey 构造公钥直付脚本：<pub_key> OP_CHECKSIG
//
// 公钥须为可解析的33或65字节SEC编码，曲线校验交给secp256k1库
func PayToPubKey(pubKey []byte) ([]byte, error) {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, fmt.Errorf("%w: invalid pub_key: %v", types.ErrInvalidStructure, err)
	}
	return codec.Serialize([]types.Command{
		types.PushCommand(pubKey),
		types.OpCommand(types.OP_CHECKSIG),
	})
}

// PayToPubKeyHash 构造公钥哈希支付脚本
//
// 输入为20字节时直接作为哈希使用，否则按公钥解析并做HASH160
func PayToPubKeyHash(pubKeyOrHash []byte) ([]byte, error) {
	hash := pubKeyOrHash
	if len(hash) != 20 {
		if _, err := btcec.ParsePubKey(pubKeyOrHash); err != nil {
			return nil, fmt.Errorf("%w: invalid pub_key: %v", types.ErrInvalidStructure, err)
		}
		hash = digest.Hash160(pubKeyOrHash)
	}
	return pubKeyHashScript(hash)
}

// PayToScriptHash 构造脚本哈希支付脚本
//
// 输入为20字节时直接作为哈希使用，否则对赎回脚本做HASH160
func PayToScriptHash(redeemOrHash []byte) ([]byte, error) {
	hash := redeemOrHash
	if len(hash) != 20 {
		if len(redeemOrHash) == 0 {
			return nil, fmt.Errorf("%w: empty redeem script", types.ErrInvalidStructure)
		}
		hash = digest.Hash160(redeemOrHash)
	}
	return scriptHashScript(hash)
}

// PayToWitnessPubKeyHash 构造隔离见证公钥哈希脚本：OP_0 <20字节>
//
// 公钥输入必须为压缩编码，未压缩公钥拒绝
func PayToWitnessPubKeyHash(pubKeyOrHash []byte) ([]byte, error) {
	hash := pubKeyOrHash
	if len(hash) != 20 {
		if len(pubKeyOrHash) != 33 {
			return nil, fmt.Errorf("%w: invalid compressed pub_key length: %d", types.ErrInvalidStructure, len(pubKeyOrHash))
		}
		if _, err := btcec.ParsePubKey(pubKeyOrHash); err != nil {
			return nil, fmt.Errorf("%w: invalid pub_key: %v", types.ErrInvalidStructure, err)
		}
		hash = digest.Hash160(pubKeyOrHash)
	}
	return witnessV0Script(hash)
}

// PayToWitnessScriptHash 构造隔离见证脚本哈希脚本：OP_0 <32字节>
//
// 输入为32字节时直接作为哈希使用，否则对见证脚本做SHA256
func PayToWitnessScriptHash(scriptOrHash []byte) ([]byte, error) {
	hash := scriptOrHash
	if len(hash) != 32 {
		if len(scriptOrHash) == 0 {
			return nil, fmt.Errorf("%w: empty witness script", types.ErrInvalidStructure)
		}
		hash = digest.SHA256(scriptOrHash)
	}
	return witnessV0Script(hash)
}

// MultiSig 构造裸多签脚本：OP_m <keys...> OP_n OP_CHECKMULTISIG
//
// 要求 1 ≤ m ≤ n ≤ 16。公钥只做长度与前缀字节检查，曲线成员资格
// 由调用方负责。lexSort为真时按字节序排序公钥（BIP67），绝不默认
func MultiSig(m int, pubKeys [][]byte, lexSort bool) ([]byte, error) {
	n := len(pubKeys)
	if m < 1 || m > 16 || m > n {
		return nil, fmt.Errorf("%w: invalid m in m-of-n: %d", types.ErrInvalidStructure, m)
	}
	if n > 16 {
		return nil, fmt.Errorf("%w: invalid n in m-of-n: %d", types.ErrInvalidStructure, n)
	}
	for _, key := range pubKeys {
		if err := checkKeyShape(key); err != nil {
			return nil, err
		}
	}

	keys := pubKeys
	if lexSort {
		keys = make([][]byte, n)
		copy(keys, pubKeys)
		sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	}

	commands := make([]types.Command, 0, n+3)
	commands = append(commands, types.IntCommand(int64(m)))
	for _, key := range keys {
		commands = append(commands, types.PushCommand(key))
	}
	commands = append(commands, types.IntCommand(int64(n)), types.OpCommand(types.OP_CHECKMULTISIG))
	return codec.Serialize(commands)
}

// NullData 构造数据承载脚本：OP_RETURN <data>
func NullData(data []byte) ([]byte, error) {
	if len(data) > maxNullDataSize {
		return nil, fmt.Errorf("%w: invalid nulldata payload length: %d", types.ErrInvalidStructure, len(data))
	}
	return codec.Serialize([]types.Command{
		types.OpCommand(types.OP_RETURN),
		types.PushCommand(data),
	})
}

// FromTypeAndPayload 从分类载荷反向构造脚本
//
// 载荷语义与Classify的输出一致。p2ms载荷补回OP_CHECKMULTISIG后
// 重新做结构断言。unknown或未定义类型返回不支持的特性错误
func FromTypeAndPayload(scriptType types.ScriptType, payload []byte) ([]byte, error) {
	switch scriptType {
	case types.ScriptTypeP2PK:
		return PayToPubKey(payload)
	case types.ScriptTypeP2PKH:
		if len(payload) != 20 {
			return nil, fmt.Errorf("%w: invalid size: %d bytes instead of 20", types.ErrInvalidStructure, len(payload))
		}
		return pubKeyHashScript(payload)
	case types.ScriptTypeP2SH:
		if len(payload) != 20 {
			return nil, fmt.Errorf("%w: invalid size: %d bytes instead of 20", types.ErrInvalidStructure, len(payload))
		}
		return scriptHashScript(payload)
	case types.ScriptTypeP2WPKH:
		if len(payload) != 20 {
			return nil, fmt.Errorf("%w: invalid size: %d bytes instead of 20", types.ErrInvalidStructure, len(payload))
		}
		return witnessV0Script(payload)
	case types.ScriptTypeP2WSH:
		if len(payload) != 32 {
			return nil, fmt.Errorf("%w: invalid size: %d bytes instead of 32", types.ErrInvalidStructure, len(payload))
		}
		return witnessV0Script(payload)
	case types.ScriptTypeP2MS:
		script := make([]byte, len(payload)+1)
		copy(script, payload)
		script[len(script)-1] = byte(types.OP_CHECKMULTISIG)
		if err := AssertP2MS(script); err != nil {
			return nil, fmt.Errorf("invalid p2ms payload: %w", err)
		}
		return script, nil
	case types.ScriptTypeNullData:
		return NullData(payload)
	default:
		return nil, fmt.Errorf("%w: unknown scriptPubKey type: %s", types.ErrUnsupportedFeature, scriptType)
	}
}

// pubKeyHashScript 组装 OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG
func pubKeyHashScript(hash []byte) ([]byte, error) {
	return codec.Serialize([]types.Command{
		types.OpCommand(types.OP_DUP),
		types.OpCommand(types.OP_HASH160),
		types.PushCommand(hash),
		types.OpCommand(types.OP_EQUALVERIFY),
		types.OpCommand(types.OP_CHECKSIG),
	})
}

// scriptHashScript 组装 OP_HASH160 <hash> OP_EQUAL
func scriptHashScript(hash []byte) ([]byte, error) {
	return codec.Serialize([]types.Command{
		types.OpCommand(types.OP_HASH160),
		types.PushCommand(hash),
		types.OpCommand(types.OP_EQUAL),
	})
}

// witnessV0Script 组装 OP_0 <program>
func witnessV0Script(program []byte) ([]byte, error) {
	return codec.Serialize([]types.Command{
		types.OpCommand(types.OP_0),
		types.PushCommand(program),
	})
}

// checkKeyShape 检查公钥的长度与前缀字节
func checkKeyShape(key []byte) error {
	switch len(key) {
	case 33:
		if key[0] == 0x02 || key[0] == 0x03 {
			return nil
		}
	case 65:
		if key[0] == 0x04 {
			return nil
		}
	default:
		return fmt.Errorf("%w: invalid pub_key length: %d", types.ErrInvalidStructure, len(key))
	}
	return fmt.Errorf("%w: invalid pub_key prefix: 0x%02x", types.ErrInvalidStructure, key[0])
}
