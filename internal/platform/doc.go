// Package platform reports which path variant matches the build target.
package platform
