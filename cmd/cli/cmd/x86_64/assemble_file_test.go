package x86_64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keurnel/assembler/architecture/x86_64"
	"github.com/keurnel/assembler/internal/assembler_context"
)

func newTestContext(source string) *assembler_context.AssemblerContext {
	architecture := x86_64.AssemblerNew(source)
	return assembler_context.New(architecture, "test.asm")
}

func TestAssembleSource_EncodesEachStatementLine(t *testing.T) {
	source := "add eax, ecx\nmov al, 1"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, true)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []byte{0x01, 0xC8}, results[0])
	assert.False(t, ctx.Debug.HasErrors())
}

func TestAssembleSource_SkipsBlankAndCommentLines(t *testing.T) {
	source := "; a leading comment\n\nadd eax, ecx\n  \n; trailing comment"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, true)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte{0x01, 0xC8}, results[0])
}

func TestAssembleSource_SkipsTrailingInlineComment(t *testing.T) {
	source := "add eax, ecx ; increment eax by ecx"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, true)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte{0x01, 0xC8}, results[0])
}

func TestAssembleSource_RecordsErrorAndSkipsBadStatement(t *testing.T) {
	source := "mov rax\nadd eax, ecx"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, true)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte{0x01, 0xC8}, results[0])

	require.True(t, ctx.Debug.HasErrors())
	errs := ctx.Debug.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Location().Line())
	assert.Equal(t, "mov rax", errs[0].Snippet())
}

func TestAssembleSource_RejectsNonX86_64Architecture(t *testing.T) {
	ctx := &assembler_context.AssemblerContext{}

	_, err := AssembleSource(ctx, "add eax, ecx", true)

	require.Error(t, err)
}

func TestAssembleSource_EmptySourceProducesNoStatements(t *testing.T) {
	ctx := newTestContext("")

	results, err := AssembleSource(ctx, "", true)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, ctx.Debug.HasErrors())
}

func TestAssembleSource_LowerFoldsUppercaseSource(t *testing.T) {
	source := "MOV RAX, RBX"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, true)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []byte{0x48, 0x89, 0xD8}, results[0])
	assert.False(t, ctx.Debug.HasErrors())
}

func TestAssembleSource_NoLowerRejectsUppercaseSource(t *testing.T) {
	source := "MOV RAX, RBX"
	ctx := newTestContext(source)

	results, err := AssembleSource(ctx, source, false)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, ctx.Debug.HasErrors())
}
