package types

import (
	"bytes"
	"encoding/hex"
	"strconv"
)

// CommandKind 脚本命令的变体类别
type CommandKind int

const (
	// CommandOpcode 命名操作码命令
	CommandOpcode CommandKind = iota
	// CommandInt 整数字面量命令
	CommandInt
	// CommandPush 原始字节推送命令
	CommandPush
)

// Command 脚本命令
// 封闭的三变体和类型：命名操作码、整数字面量、字节推送
// 解析后的脚本即为 []Command，顺序与线上字节严格一致
type Command struct {
	kind CommandKind
	op   Opcode
	num  int64
	data []byte
}

// OpCommand 构造操作码命令
func OpCommand(op Opcode) Command {
	return Command{kind: CommandOpcode, op: op}
}

// IntCommand 构造整数字面量命令
func IntCommand(n int64) Command {
	return Command{kind: CommandInt, num: n}
}

// PushCommand 构造字节推送命令
// 持有输入数据的副本
func PushCommand(data []byte) Command {
	return Command{kind: CommandPush, data: bytes.Clone(data)}
}

// Kind 返回命令的变体类别
func (c Command) Kind() CommandKind {
	return c.kind
}

// Op 返回操作码命令的操作码
// 仅对 CommandOpcode 变体有意义
func (c Command) Op() Opcode {
	return c.op
}

// Int 返回整数命令的数值
// 仅对 CommandInt 变体有意义
func (c Command) Int() int64 {
	return c.num
}

// Data 返回推送命令的字节内容
// 仅对 CommandPush 变体有意义，调用方不得修改返回的切片
func (c Command) Data() []byte {
	return c.data
}

// Equal 比较两个命令是否相同
func (c Command) Equal(other Command) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case CommandOpcode:
		return c.op == other.op
	case CommandInt:
		return c.num == other.num
	default:
		return bytes.Equal(c.data, other.data)
	}
}

// String 返回命令的可读表示
// 操作码显示标准名称，整数显示十进制，推送显示十六进制
func (c Command) String() string {
	switch c.kind {
	case CommandOpcode:
		return c.op.String()
	case CommandInt:
		return strconv.FormatInt(c.num, 10)
	default:
		return hex.EncodeToString(c.data)
	}
}
