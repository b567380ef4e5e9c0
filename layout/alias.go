package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Widget = layout.Widget

var Exact = layout.Exact
var FPt = layout.FPt
var NewContext = layout.NewContext
