// Package codec 提供脚本命令序列与原始字节之间的编解码
//
// 序列化：操作码输出其字节值；整数按最小编码输出（0、-1、1..16映射到
// 专用操作码，其余做小端带符号数值推送）；数据推送按长度选择直接
// 长度字节或OP_PUSHDATA1/2/4标记。
// 解析：游标逐字节扫描，推送标记读取显式长度字段，越界即失败，
// 不产生部分结果。解析只产出操作码与数据推送两类命令，非最小
// 推送形式原样保留为数据推送。
package codec

import (
	"encoding/binary"
	"fmt"

	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

const (
	// maxDirectPushSize 直接长度字节可表达的最大推送长度
	maxDirectPushSize = 75
	// maxPushSize OP_PUSHDATA4可表达的最大推送长度
	maxPushSize = 0xffffffff
)

// Codec 实现script.ScriptCodec契约
type Codec struct{}

var _ scriptintf.ScriptCodec = (*Codec)(nil)

// New 创建脚本编解码器
func New() *Codec {
	return &Codec{}
}

// Serialize 将命令序列编码为脚本字节
func (c *Codec) Serialize(commands []types.Command) ([]byte, error) {
	return Serialize(commands)
}

// Parse 将脚本字节解析为命令序列
func (c *Codec) Parse(script []byte) ([]types.Command, error) {
	return Parse(script)
}

// Serialize 将命令序列编码为脚本字节
//
// 失败情形：未命名的操作码、裸OP_PUSHDATA标记、超长数据推送，
// 均返回结构无效错误
func Serialize(commands []types.Command) ([]byte, error) {
	var buf []byte
	for _, cmd := range commands {
		switch cmd.Kind() {
		case types.CommandOpcode:
			op := cmd.Op()
			if !op.IsValid() {
				return nil, fmt.Errorf("%w: invalid opcode: 0x%02x", types.ErrInvalidStructure, byte(op))
			}
			if op == types.OP_PUSHDATA1 || op == types.OP_PUSHDATA2 || op == types.OP_PUSHDATA4 {
				return nil, fmt.Errorf("%w: bare push data marker: %s", types.ErrInvalidStructure, op)
			}
			buf = append(buf, byte(op))
		case types.CommandInt:
			buf = appendInt(buf, cmd.Int())
		case types.CommandPush:
			var err error
			buf, err = appendPush(buf, cmd.Data())
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown command kind: %d", types.ErrInvalidStructure, cmd.Kind())
		}
	}
	return buf, nil
}

// Parse 将脚本字节解析为命令序列
//
// 空脚本解析为空序列。推送数据或长度字段被截断时返回编码损坏错误
func Parse(script []byte) ([]types.Command, error) {
	var commands []types.Command
	i := 0
	for i < len(script) {
		b := script[i]
		switch {
		case b >= 0x01 && b <= maxDirectPushSize:
			size := int(b)
			i++
			if size > len(script)-i {
				return nil, fmt.Errorf("%w: truncated data push: need %d bytes, have %d", types.ErrMalformedEncoding, size, len(script)-i)
			}
			commands = append(commands, types.PushCommand(script[i:i+size]))
			i += size
		case b == byte(types.OP_PUSHDATA1):
			if len(script)-i < 2 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA1 length field", types.ErrMalformedEncoding)
			}
			size := int(script[i+1])
			i += 2
			if size > len(script)-i {
				return nil, fmt.Errorf("%w: truncated data push: need %d bytes, have %d", types.ErrMalformedEncoding, size, len(script)-i)
			}
			commands = append(commands, types.PushCommand(script[i:i+size]))
			i += size
		case b == byte(types.OP_PUSHDATA2):
			if len(script)-i < 3 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA2 length field", types.ErrMalformedEncoding)
			}
			size := int(binary.LittleEndian.Uint16(script[i+1 : i+3]))
			i += 3
			if size > len(script)-i {
				return nil, fmt.Errorf("%w: truncated data push: need %d bytes, have %d", types.ErrMalformedEncoding, size, len(script)-i)
			}
			commands = append(commands, types.PushCommand(script[i:i+size]))
			i += size
		case b == byte(types.OP_PUSHDATA4):
			if len(script)-i < 5 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA4 length field", types.ErrMalformedEncoding)
			}
			size := int(binary.LittleEndian.Uint32(script[i+1 : i+5]))
			i += 5
			if size > len(script)-i {
				return nil, fmt.Errorf("%w: truncated data push: need %d bytes, have %d", types.ErrMalformedEncoding, size, len(script)-i)
			}
			commands = append(commands, types.PushCommand(script[i:i+size]))
			i += size
		default:
			commands = append(commands, types.OpCommand(types.Opcode(b)))
			i++
		}
	}
	return commands, nil
}

// appendInt 追加整数字面量的最小编码
func appendInt(buf []byte, n int64) []byte {
	switch {
	case n == 0:
		return append(buf, byte(types.OP_0))
	case n == -1:
		return append(buf, byte(types.OP_1NEGATE))
	case n >= 1 && n <= 16:
		return append(buf, byte(types.OP_1)+byte(n-1))
	}
	num := scriptNumBytes(n)
	// 数值编码不超过9字节，必然落在直接长度字节范围内
	buf = append(buf, byte(len(num)))
	return append(buf, num...)
}

// scriptNumBytes 返回整数的最小小端带符号数值编码
//
// 绝对值按小端排列，最高字节的最高位承载符号；若数值本身占用了
// 最高位，则追加一个符号字节
func scriptNumBytes(n int64) []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	magnitude := uint64(n)
	if isNegative {
		magnitude = uint64(-(n + 1)) + 1
	}

	result := make([]byte, 0, 9)
	for magnitude > 0 {
		result = append(result, byte(magnitude&0xff))
		magnitude >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		signByte := byte(0x00)
		if isNegative {
			signByte = 0x80
		}
		result = append(result, signByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// appendPush 追加数据推送，按长度选择最短的推送标记
func appendPush(buf []byte, data []byte) ([]byte, error) {
	size := len(data)
	switch {
	case size == 0:
		return append(buf, byte(types.OP_0)), nil
	case size <= maxDirectPushSize:
		buf = append(buf, byte(size))
	case size <= 0xff:
		buf = append(buf, byte(types.OP_PUSHDATA1), byte(size))
	case size <= 0xffff:
		buf = append(buf, byte(types.OP_PUSHDATA2))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(size))
	case int64(size) <= maxPushSize:
		buf = append(buf, byte(types.OP_PUSHDATA4))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	default:
		return nil, fmt.Errorf("%w: data too long for push operation: %d", types.ErrInvalidStructure, size)
	}
	return append(buf, data...), nil
}
