// This file is part of gbamap.
//
// gbamap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbamap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbamap.  If not, see <https://www.gnu.org/licenses/>.

package palram

import (
	"fmt"

	"github.com/jetsetilly/gbamap/assert"
)

// Color is a palette entry. Five bits per channel with the highest bit
// ignored:
//
//	0bXBBBBBGG_GGGRRRRR
type Color uint16

// ChannelMax is the maximum value of a single color channel.
const ChannelMax = 31

const channelMask = 0x1f

// RGB returns the Color for the channel values.
//
// Panics if any channel is greater than ChannelMax.
func RGB(r, g, b int) Color {
	r = assert.BoundCheck(r, ChannelMax+1)
	g = assert.BoundCheck(g, ChannelMax+1)
	b = assert.BoundCheck(b, ChannelMax+1)
	return Color(r | g<<5 | b<<10)
}

// Channels returns the red, green and blue channel values. The ignored bit
// does not affect the result.
func (c Color) Channels() (r, g, b int) {
	return int(c & channelMask), int(c >> 5 & channelMask), int(c >> 10 & channelMask)
}

func (c Color) String() string {
	r, g, b := c.Channels()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
