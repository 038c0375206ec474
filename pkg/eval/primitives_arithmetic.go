package eval

import (
	"math/big"

	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// unpackNums unpacks every argument as a number, per unpackNum's
// coercion rule, requiring at least minArgs of them.
func unpackNums(args []types.Value, minArgs int) ([]*big.Int, error) {
	if len(args) < minArgs {
		return nil, schemerr.NewNumArgs(minArgs, args)
	}
	nums := make([]*big.Int, len(args))
	for i, a := range args {
		n, err := unpackNum(a)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func foldArithmetic(args []types.Value, op func(acc, next *big.Int) (*big.Int, error)) (types.Value, error) {
	nums, err := unpackNums(args, 2)
	if err != nil {
		return nil, err
	}
	acc := new(big.Int).Set(nums[0])
	for _, n := range nums[1:] {
		acc, err = op(acc, n)
		if err != nil {
			return nil, err
		}
	}
	return types.Number{Int: acc}, nil
}

func primitiveAdd(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		return new(big.Int).Add(acc, next), nil
	})
}

func primitiveSub(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(acc, next), nil
	})
}

func primitiveMul(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		return new(big.Int).Mul(acc, next), nil
	})
}

func primitiveDiv(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		if next.Sign() == 0 {
			return nil, schemerr.NewDefault("Division by zero")
		}
		// Quo truncates toward zero, e.g. (/ -7 2) => -3.
		return new(big.Int).Quo(acc, next), nil
	})
}

func primitiveQuotient(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		if next.Sign() == 0 {
			return nil, schemerr.NewDefault("Division by zero")
		}
		return new(big.Int).Quo(acc, next), nil
	})
}

// primitiveMod and primitiveRemainder both use big.Int.Rem (truncated
// division; the remainder takes the dividend's sign), the same
// convention Go's native % operator uses.
func primitiveMod(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		if next.Sign() == 0 {
			return nil, schemerr.NewDefault("Division by zero")
		}
		return new(big.Int).Rem(acc, next), nil
	})
}

func primitiveRemainder(args []types.Value) (types.Value, error) {
	return foldArithmetic(args, func(acc, next *big.Int) (*big.Int, error) {
		if next.Sign() == 0 {
			return nil, schemerr.NewDefault("Division by zero")
		}
		return new(big.Int).Rem(acc, next), nil
	})
}
