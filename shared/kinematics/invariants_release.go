//go:build !debug

package kinematics

const strictInvariants = false
