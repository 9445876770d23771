package keyword

import "github.com/fwojciec/doccover"

func on(triggers ...string) []string { return triggers }

// DefaultRules is the topic table of the front-end interview checklist the
// tool was built for. Order matters: the first triggered rule wins, so broad
// triggers such as "rn" and "em" sit near the end.
var DefaultRules = []doccover.KeywordRule{
	{Triggers: on("async", "await"), Keywords: []string{"async", "await"}},
	{Triggers: on("promise"), Keywords: []string{"Promise", "promise"}},
	{Triggers: on("webpack"), Keywords: []string{"Webpack", "webpack"}},
	{Triggers: on("vue"), Keywords: []string{"Vue", "vue"}},
	{Triggers: on("react"), Keywords: []string{"React", "react"}},
	{Triggers: on("bfc"), Keywords: []string{"BFC", "bfc"}},
	{Triggers: on("for", "foreach"), Keywords: []string{"forEach", "for循环"}, All: true},
	{Triggers: on("import", "require"), Keywords: []string{"import", "require"}, All: true},
	{Triggers: on("快速排序"), Keywords: []string{"快速排序", "quickSort"}},
	{Triggers: on("数组打平"), Keywords: []string{"数组打平", "flat", "扁平化"}},
	{Triggers: on("链表"), Keywords: []string{"链表", "linked"}},
	{Triggers: on("http", "https"), Keywords: []string{"HTTP", "HTTPS"}},
	{Triggers: on("性能优化"), Keywords: []string{"性能优化", "性能"}},
	{Triggers: on("监控"), Keywords: []string{"监控"}},
	{Triggers: on("node"), Keywords: []string{"Node", "node"}},
	{Triggers: on("xss"), Keywords: []string{"XSS", "xss"}},
	{Triggers: on("csrf"), Keywords: []string{"CSRF", "csrf"}},
	{Triggers: on("跨域"), Keywords: []string{"跨域", "CORS"}},
	{Triggers: on("babel"), Keywords: []string{"Babel", "babel"}},
	{Triggers: on("loader"), Keywords: []string{"loader", "Loader"}},
	{Triggers: on("plugin"), Keywords: []string{"plugin", "Plugin"}},
	{Triggers: on("hmr"), Keywords: []string{"HMR", "hmr", "热更新"}},
	{Triggers: on("响应式"), Keywords: []string{"响应式", "reactive"}},
	{Triggers: on("mixin"), Keywords: []string{"mixin", "Mixin"}},
	{Triggers: on("computed"), Keywords: []string{"computed"}},
	{Triggers: on("watch"), Keywords: []string{"watch"}},
	{Triggers: on("v-model"), Keywords: []string{"v-model"}},
	{Triggers: on("v-if", "v-show"), Keywords: []string{"v-if", "v-show"}},
	{Triggers: on("keep-alive"), Keywords: []string{"keep-alive", "keepAlive"}},
	{Triggers: on("router"), Keywords: []string{"router", "Router", "路由"}},
	{Triggers: on("vuex"), Keywords: []string{"Vuex", "vuex"}},
	{Triggers: on("ssr"), Keywords: []string{"SSR", "ssr", "服务端渲染"}},
	{Triggers: on("vdom", "虚拟dom"), Keywords: []string{"虚拟DOM", "VDom", "VDOM", "Virtual DOM"}},
	{Triggers: on("diff"), Keywords: []string{"diff", "Diff"}},
	{Triggers: on("fiber"), Keywords: []string{"Fiber", "fiber"}},
	{Triggers: on("hooks"), Keywords: []string{"Hooks", "hooks", "useState", "useEffect"}},
	{Triggers: on("context"), Keywords: []string{"Context", "context"}},
	{Triggers: on("refs", "ref"), Keywords: []string{"ref", "refs", "useRef"}},
	{Triggers: on("高阶组件"), Keywords: []string{"高阶组件", "HOC"}},
	{Triggers: on("受控组件"), Keywords: []string{"受控组件", "非受控组件"}},
	{Triggers: on("pure component"), Keywords: []string{"PureComponent", "Pure Component"}},
	{Triggers: on("生命周期"), Keywords: []string{"生命周期", "lifecycle"}},
	{Triggers: on("immutable"), Keywords: []string{"Immutable", "immutable"}},
	{Triggers: on("防抖", "节流"), Keywords: []string{"防抖", "节流", "debounce", "throttle"}},
	{Triggers: on("devtools"), Keywords: []string{"devtools", "DevTools", "开发者工具"}},
	{Triggers: on("coredump"), Keywords: []string{"coredump", "core dump"}},
	{Triggers: on("pm2"), Keywords: []string{"PM2", "pm2"}},
	{Triggers: on("rn", "react native"), Keywords: []string{"React Native", "RN"}},
	{Triggers: on("小程序"), Keywords: []string{"小程序"}},
	{Triggers: on("taro"), Keywords: []string{"Taro", "taro"}},
	{Triggers: on("flutter"), Keywords: []string{"Flutter", "flutter"}},
	{Triggers: on("position"), Keywords: []string{"position"}},
	{Triggers: on("sticky"), Keywords: []string{"sticky"}},
	{Triggers: on("bind", "call", "apply"), Keywords: []string{"bind", "call", "apply"}},
	{Triggers: on("localstorage", "cookie"), Keywords: []string{"localStorage", "cookie"}},
	{Triggers: on("viewport"), Keywords: []string{"viewport"}},
	{Triggers: on("rem", "em"), Keywords: []string{"rem", "em", "vw"}},
	{Triggers: on("选择器"), Keywords: []string{"选择器", "selector"}},
	{Triggers: on("浮动"), Keywords: []string{"浮动", "float", "清除浮动"}},
	{Triggers: on("事件代理", "事件委托"), Keywords: []string{"事件代理", "事件委托", "delegation"}},
	{Triggers: on("1px"), Keywords: []string{"1px", "retina"}},
	{Triggers: on("sass", "less"), Keywords: []string{"sass", "less", "scss"}},
}
