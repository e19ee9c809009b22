//go:build debug

package kinematics

const strictInvariants = true
