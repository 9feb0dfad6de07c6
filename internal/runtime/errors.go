package runtime

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Document errors use the exact message strings the result contract
// promises; callers match on them.
var (
	ErrNoDocument      = errors.New("No document loaded")
	ErrSectionNotFound = errors.New("Section not found")
	ErrNavigationLoop  = errors.New("runner: navigation loop detected")
	ErrSectionLimit    = errors.New("runner: section limit exceeded")
)

const (
	blockUnknownCode    = "BLOCK_TYPE_UNKNOWN"
	blockExecutionCode  = "BLOCK_EXECUTION_FAILED"
	navigationLoopCode  = "NAVIGATION_LOOP_DETECTED"
	stateMergeFailed    = "STATE_MERGE_FAILED"
	scriptDisabledCode  = "SCRIPT_EXECUTION_DISABLED"
	sqlUnconfiguredCode = "SQL_STORAGE_UNCONFIGURED"
)

// errUnknownBlockType fails loudly on block types outside the closed enum.
func errUnknownBlockType(blockType interfaces.BlockType) error {
	return goerrors.Wrap(
		fmt.Errorf("runtime: unrecognized block type %q", blockType),
		goerrors.CategoryValidation, "block dispatch failed").
		WithTextCode(blockUnknownCode)
}

// wrapBlockError envelopes executor failures on malformed block content.
func wrapBlockError(blockType interfaces.BlockType, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand,
		fmt.Sprintf("%s block failed", blockType)).
		WithTextCode(blockExecutionCode)
}

// wrapMergeError envelopes store failures while merging executor changes.
func wrapMergeError(blockType interfaces.BlockType, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand,
		fmt.Sprintf("%s block state merge failed", blockType)).
		WithTextCode(stateMergeFailed)
}

func wrapLoopError(err error, section string, visited int) error {
	return goerrors.Wrap(err, goerrors.CategoryCommand,
		fmt.Sprintf("navigation aborted at %q after %d sections", section, visited)).
		WithTextCode(navigationLoopCode)
}
