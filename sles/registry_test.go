package sles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckClass(t *testing.T) {
	{ // the in-house family is always available
		cp := Detect()
		assert.Equal(t, ClassNative, cp.CheckClass(ClassNative))
		assert.Equal(t, ClassNone, cp.CheckClass(ClassPETSc))
		assert.Equal(t, ClassNone, cp.CheckClass(ClassHYPRE))
		assert.Equal(t, ClassNone, cp.CheckClass(ClassMUMPS))
		assert.Empty(t, cp.Warnings)
	}
	{ // direct availability wins, no warning
		cp := &Capabilities{PETSc: true, HYPRE: true, MUMPS: true}
		assert.Equal(t, ClassPETSc, cp.CheckClass(ClassPETSc))
		assert.Equal(t, ClassHYPRE, cp.CheckClass(ClassHYPRE))
		assert.Equal(t, ClassMUMPS, cp.CheckClass(ClassMUMPS))
		assert.Empty(t, cp.Warnings)
	}
	{ // HYPRE hosted by PETSc: substitution with a recorded warning
		cp := &Capabilities{PETSc: true, HypreInPETSc: true}
		assert.Equal(t, ClassPETSc, cp.CheckClass(ClassHYPRE))
		assert.Len(t, cp.Warnings, 1)
	}
	{ // PETSc without the HYPRE feature cannot serve HYPRE
		cp := &Capabilities{PETSc: true}
		assert.Equal(t, ClassNone, cp.CheckClass(ClassHYPRE))
		assert.Equal(t, ClassNone, cp.CheckClass(ClassMUMPS))
	}
	{ // MUMPS hosted by PETSc
		cp := &Capabilities{PETSc: true, MumpsInPETSc: true}
		assert.Equal(t, ClassPETSc, cp.CheckClass(ClassMUMPS))
		assert.Len(t, cp.Warnings, 1)
	}
	{ // sub-feature flags without PETSc itself are inert
		cp := &Capabilities{HypreInPETSc: true, MumpsInPETSc: true}
		assert.False(t, cp.HypreViaPetsc())
		assert.False(t, cp.MumpsViaPetsc())
		assert.Equal(t, ClassNone, cp.CheckClass(ClassHYPRE))
	}
	{
		cp := Detect()
		assert.Equal(t, ClassNone, cp.CheckClass(ClassNone))
	}
}

func TestAvailable(t *testing.T) {
	cp := &Capabilities{PETSc: true, HypreInPETSc: true}
	assert.True(t, cp.Available(ClassNative))
	assert.True(t, cp.Available(ClassPETSc))
	assert.True(t, cp.Available(ClassHYPRE)) // hosted counts as reachable
	assert.False(t, cp.Available(ClassMUMPS))
	assert.False(t, cp.Available(ClassNone))
}
