package sink_test

import (
	"fmt"

	"github.com/matzehuels/lovewall/pkg/wall/layout"
	"github.com/matzehuels/lovewall/pkg/wall/sink"
)

func ExampleRenderCSS() {
	plan, _ := layout.NewPlanner().Plan(2)
	fmt.Print(string(sink.RenderCSS(plan)))
	// Output:
	// /* 2 cards, preset tiered, strategy cube */
	// .photo-item:nth-child(1) {
	//   transform: translate3d(0px, 0px, 200px) rotateY(0deg) rotateX(0deg) rotateZ(0deg);
	//   animation-delay: 0s;
	// }
	// .photo-item:nth-child(2) {
	//   transform: translate3d(200px, 0px, 0px) rotateY(90deg) rotateX(0deg) rotateZ(0deg);
	//   animation-delay: 0.1s;
	// }
}
