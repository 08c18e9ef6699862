package pluginlua

// The sandbox mechanics (whitelist capture/restore as Lua source loaded into
// the registry) are adapted verbatim from Ambrevar-demlo/sandbox.go; only
// the whitelist contents differ; scripts here don't touch os.date/time and
// candidate scripts never need it removed either, so it stays for parity
// with demlo's table.

const luaWhitelist = `
return {
	golua_default_msghandler = golua_default_msghandler,

	assert = assert,
	ipairs = ipairs,
	error = error,
	getmetatable = getmetatable,
	next = next,
	pairs = pairs,
	select = select,
	rawequal = rawequal,
	rawget = rawget,
	rawset = rawset,
	setmetatable = setmetatable,
	tonumber = tonumber,
	tostring = tostring,
	type = type,
	unpack = unpack,
	_VERSION = _VERSION,
	math = {
		abs = math.abs,
		ceil = math.ceil,
		floor = math.floor,
		fmod = math.fmod,
		huge = math.huge,
		max = math.max,
		min = math.min,
		pow = math.pow,
		sqrt = math.sqrt,
	},
	os = {
		clock = os.clock,
		date = os.date,
		time = os.time,
	},
	string = {
		byte = string.byte,
		char = string.char,
		find = string.find,
		format = string.format,
		gmatch = string.gmatch,
		gsub = string.gsub,
		len = string.len,
		lower = string.lower,
		match = string.match,
		rep = string.rep,
		reverse = string.reverse,
		sub = string.sub,
		upper = string.upper,
	},
	table = {
		concat = table.concat,
		insert = table.insert,
		remove = table.remove,
		sort = table.sort,
		unpack = table.unpack,
	},
}`

const luaRestoreSandbox = `
return function (whitelist)
	for k, v in pairs(whitelist) do
		if type(v) == 'table' then
			_G[k]={}
			for ks, vs in pairs(v) do
				_G[k][ks] = vs
			end
		else
			_G[k] = v
		end
	end
end`

const luaSetSandbox = `
return function (whitelist)
	for k, v in pairs(_G) do
		if k ~= '_G' then
			if not whitelist[k] then
				_G[k] = nil
			elseif type(v) == 'table' then
				for ks in pairs(v) do
					if not whitelist[k][ks] then
						v[ks] = nil
					end
				end
			end
		end
	end
end`
