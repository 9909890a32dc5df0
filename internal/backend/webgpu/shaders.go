//go:build windows

package webgpu

// workgroupSize is the number of invocations per workgroup.
const workgroupSize = 256

// maxWorkgroupsPerDim is the WebGPU limit on workgroups per dispatch dimension.
const maxWorkgroupsPerDim = 65535

// butterflyShader runs one radix-2 stage over every row of the buffer.
// Invocation p handles the pair (j, j+stride) with j = (p/stride)*2*stride + p%stride.
// Rows have a power-of-two length that is a multiple of 2*stride, so the
// pairs never cross a row boundary.
const butterflyShader = `
struct Params {
    stride: u32,
    pairs: u32,
    width: u32,
    _pad: u32,
}

@group(0) @binding(0) var<storage, read_write> data: array<f32>;
@group(0) @binding(1) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let p = gid.x + gid.y * params.width;
    if (p >= params.pairs) {
        return;
    }

    let s = params.stride;
    let j = (p / s) * 2u * s + p % s;
    let a = data[j];
    let b = data[j + s];
    data[j] = a + b;
    data[j + s] = a - b;
}
`
