//go:build heatdebug

package heat_source

const debugBounds = true
